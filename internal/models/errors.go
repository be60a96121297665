package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two classes of caller mistakes the engine rejects.
var (
	// ErrInvalidInput covers negative counts, negative tolerance, non-finite
	// measurements and lot sizes outside the sampling table's domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncompleteInput is returned when a measurement has no actual value yet.
	ErrIncompleteInput = errors.New("incomplete input")
)

// ValidationError describes which input was rejected and why.
// It unwraps to ErrInvalidInput or ErrIncompleteInput.
type ValidationError struct {
	Field   string      // Name of the offending input (e.g. "lotSize", "tolerance")
	Value   interface{} // The rejected value, if any
	Message string      // Human-readable reason
	Err     error       // Sentinel the error unwraps to
}

// NewInvalidInput creates a ValidationError wrapping ErrInvalidInput.
func NewInvalidInput(field string, value interface{}, msg string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: msg, Err: ErrInvalidInput}
}

// NewIncompleteInput creates a ValidationError wrapping ErrIncompleteInput.
func NewIncompleteInput(field string, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg, Err: ErrIncompleteInput}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString("validation failed")
	}
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf(": %s", e.Field))
	}
	if e.Message != "" {
		sb.WriteString(fmt.Sprintf(": %s", e.Message))
	}
	if e.Value != nil {
		sb.WriteString(fmt.Sprintf(" (got %v)", e.Value))
	}
	return sb.String()
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
