package domain

import (
	"errors"
	"strings"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("unique constraint conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIndexOutOfRange    = errors.New("line item index out of range")
	ErrBadNumberFormat    = errors.New("malformed invoice number")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
)

// ValidationError reports which required fields are missing or invalid.
// It matches ErrInvalidInput under errors.Is so handlers can map it generically
// while still surfacing the field list to the user.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrInvalidInput) succeed for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError builds a ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
