// Package services contains the ent-backed persistence services for jobs,
// job events, semantic models, and connectors.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a job status change violates the
	// queued→running→terminal graph
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrLeaseHeld is returned when a mutation is attempted by a worker that
	// does not hold the job's lease
	ErrLeaseHeld = errors.New("job lease held by another worker")

	// ErrConnectorDisabled is returned when a job references a connector that
	// has been disabled or denied by policy
	ErrConnectorDisabled = errors.New("connector disabled")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
