package store

// Error values shared by store implementations and the workflow
// layers sitting on top of them. Handlers translate these into HTTP
// status codes: ErrValidation to 400, ErrForbidden to 403.

import (
	"errors"
	"fmt"
)

// ErrValidation marks a rejected input: a required field is missing
// or malformed. Nothing has been persisted when it is returned.
var ErrValidation = errors.New("validation failed")

// ErrForbidden is returned when a caller operates on a record owned
// by someone else, such as a company deleting another company's
// station.
var ErrForbidden = errors.New("forbidden")

// ValidationError carries the offending field so callers can surface
// field-level messages. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Missing builds the common "required field absent" validation error.
func Missing(field string) error { return &ValidationError{Field: field} }

// Invalid builds a validation error with an explicit reason.
func Invalid(field, reason string) error { return &ValidationError{Field: field, Reason: reason} }
