package catalog

import (
	"errors"
	"fmt"
)

// Error is the structured error type shared by the catalog, query, and
// interact packages.
//
// Errors fall into three categories:
//   - Not found: an id did not resolve to an entity
//   - Validation: empty or invalid input to a create operation
//   - Invalid state: a mutation would violate an invariant
//
// All errors are local and recoverable by the caller; none are fatal.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Kind identifies the entity kind (for not-found errors).
	Kind string

	// ID identifies the affected entity (for not-found errors).
	ID string
}

// ErrorCode categorizes errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates an id did not resolve to an entity.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeValidation indicates empty or invalid input to a create operation.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeInvalidState indicates a mutation would violate an invariant,
	// e.g. decrementing an upvote count below zero.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind != "" && e.ID != "" {
		return fmt.Sprintf("%s: %s (%s=%s)", e.Code, e.Message, e.Kind, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound returns true if the error is a not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation returns true if the error is a validation error.
func IsValidation(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeValidation
	}
	return false
}

// IsInvalidState returns true if the error is an invalid-state error.
func IsInvalidState(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidState
	}
	return false
}

// NewNotFound creates an Error for an unresolved entity id.
func NewNotFound(kind, id string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: kind + " not found",
		Kind:    kind,
		ID:      id,
	}
}

// NewValidation creates an Error for invalid create input.
func NewValidation(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewInvalidState creates an Error for an invariant violation.
func NewInvalidState(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidState,
		Message: fmt.Sprintf(format, args...),
	}
}
