package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrTimeout       = errors.New("timeout")
	ErrStoreFailure  = errors.New("store failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Outcome tells a caller what state the store is in after a failed operation.
type Outcome string

const (
	// OutcomeNothingHappened: nothing was applied, retry after fixing the input.
	OutcomeNothingHappened Outcome = "nothing_happened"
	// OutcomeAlreadyHappened: the target state already exists, do not retry as-is.
	OutcomeAlreadyHappened Outcome = "already_happened"
	// OutcomeUnknown: the store state is unknown, re-query before retrying.
	OutcomeUnknown Outcome = "unknown_state"
)

// OutcomeOf classifies an error returned by a core operation.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrStoreFailure),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeUnknown
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return OutcomeAlreadyHappened
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation),
		errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return OutcomeNothingHappened
	default:
		return OutcomeUnknown
	}
}
