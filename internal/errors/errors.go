// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNoValidCandidates = errors.New("no valid candidates")
	ErrConfigInvalid     = errors.New("invalid configuration")
)

// NumericError represents a numeric degeneracy or a violated numeric
// precondition in a pricing or search computation.
type NumericError struct {
	Op     string
	Reason string
	Err    error
}

func (e *NumericError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("numeric error [%s]: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("numeric error [%s]: %s", e.Op, e.Reason)
}

func (e *NumericError) Unwrap() error {
	return e.Err
}

// NewNumericError creates a new NumericError.
func NewNumericError(op, reason string, err error) *NumericError {
	return &NumericError{
		Op:     op,
		Reason: reason,
		Err:    err,
	}
}

// NewNumericErrorf creates a new NumericError with a formatted reason.
func NewNumericErrorf(op, format string, args ...interface{}) *NumericError {
	return &NumericError{
		Op:     op,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsNumeric reports whether any error in err's chain is a NumericError.
func IsNumeric(err error) bool {
	var ne *NumericError
	return errors.As(err, &ne)
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
