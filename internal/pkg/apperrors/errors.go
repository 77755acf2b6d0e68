package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campushq/studenthub/internal/pkg/validation"
)

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Persistence errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Student errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidStudentID = errors.New("invalid student ID format")
)

// ValidationError carries the full violation list produced by the
// student validator. It unwraps to ErrValidationFailed so callers can
// match it with errors.Is.
type ValidationError struct {
	Violations []validation.Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap implements errors.Unwrap.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError wraps a non-empty violation list.
func NewValidationError(violations []validation.Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NewStorageError wraps a driver error so the boundary can map it to a
// generic persistence failure without losing the cause.
func NewStorageError(err error) error {
	return &CustomError{
		Err:     ErrStorageUnavailable,
		Message: fmt.Sprintf("storage operation failed: %v", err),
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}
