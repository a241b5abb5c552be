package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain errors.
var (
	ErrSubmissionInFlight = errors.New("submission already in progress for this form")
	ErrAlreadySubmitted   = errors.New("form already submitted")
	ErrDuplicateLead      = errors.New("a lead with this email already exists")
	ErrSinkUnavailable    = errors.New("lead sink unavailable")
	ErrMissingFormToken   = errors.New("form token is required")
)

// Error codes exposed to adapters. They double as the suffix of the
// contact.error.* translation keys.
const (
	CodeValidation         = "validation"
	CodeSubmissionInFlight = "submission_in_flight"
	CodeAlreadySubmitted   = "already_submitted"
	CodeDuplicateLead      = "duplicate_lead"
	CodeSinkUnavailable    = "sink_unavailable"
	CodeMissingFormToken   = "missing_form_token"
)

// ValidationError carries the failed fields of a lead submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return "invalid lead: " + strings.Join(names, ", ")
}

// Code returns the stable code of a domain error, or "" when err is not one.
func Code(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return CodeValidation
	case errors.Is(err, ErrSubmissionInFlight):
		return CodeSubmissionInFlight
	case errors.Is(err, ErrAlreadySubmitted):
		return CodeAlreadySubmitted
	case errors.Is(err, ErrDuplicateLead):
		return CodeDuplicateLead
	case errors.Is(err, ErrSinkUnavailable):
		return CodeSinkUnavailable
	case errors.Is(err, ErrMissingFormToken):
		return CodeMissingFormToken
	default:
		return ""
	}
}
