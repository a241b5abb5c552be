package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"signalsite/internal/domain/entities"
)

// Field names a validated lead form field.
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldPhoneNumber Field = "phoneNumber"
	FieldEmail       Field = "email"
)

// Translation keys for field errors.
const (
	MsgRequired     = "contact.error.required"
	MsgInvalidPhone = "contact.error.phone"
	MsgInvalidEmail = "contact.error.email"
)

// DefaultPhonePrefix is preselected on an empty form.
const DefaultPhonePrefix = "+1"

var (
	phonePattern = regexp.MustCompile(`^\d{6,}$`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// FieldErrors maps each failed field to the translation key of its message.
type FieldErrors map[Field]string

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// Validate checks every field of in independently.
func Validate(in entities.LeadInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.FirstName) == "" {
		errs[FieldFirstName] = MsgRequired
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs[FieldLastName] = MsgRequired
	}

	if strings.TrimSpace(in.PhoneNumber) == "" {
		errs[FieldPhoneNumber] = MsgRequired
	} else if !phonePattern.MatchString(stripSpace(in.PhoneNumber)) {
		errs[FieldPhoneNumber] = MsgInvalidPhone
	}

	if strings.TrimSpace(in.Email) == "" {
		errs[FieldEmail] = MsgRequired
	} else if !emailPattern.MatchString(in.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}

	return errs
}

// NormalizePrefix returns prefix when it is one of allowed, else DefaultPhonePrefix.
func NormalizePrefix(prefix string, allowed []string) string {
	prefix = strings.TrimSpace(prefix)
	for _, a := range allowed {
		if prefix == a {
			return prefix
		}
	}
	return DefaultPhonePrefix
}

// Normalize builds the sink record from a validated input.
func Normalize(in entities.LeadInput, now time.Time) entities.Lead {
	return entities.Lead{
		FName:     in.FirstName,
		LName:     in.LastName,
		Phone:     in.PhonePrefix + in.PhoneNumber,
		Email:     in.Email,
		CreatedAt: now.UTC(),
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
