package entities

import "time"

// LeadInput is the raw content of the contact form.
type LeadInput struct {
	FirstName   string
	LastName    string
	PhonePrefix string
	PhoneNumber string
	Email       string
}

// Lead is the normalized record handed to the lead sink.
type Lead struct {
	ID        int64
	FName     string
	LName     string
	Phone     string
	Email     string
	CreatedAt time.Time
}
