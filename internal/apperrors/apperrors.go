package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested record does not exist (or is inactive
	// where an active filter applies).
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means a business rule disallows the operation, e.g.
	// deleting a user whose role is not "user".
	ErrForbidden = errors.New("operation not allowed")

	// ErrEmailTaken means the email unique constraint was violated.
	ErrEmailTaken = errors.New("email already exists")
)

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
