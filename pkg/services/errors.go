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
)

// Machine-readable validation reason codes. Surfaced to callers so an
// administrative client can correct its input.
const (
	ReasonDuplicateID          = "duplicate_id"
	ReasonDuplicatePhoneNumber = "duplicate_phone_number"
	ReasonDanglingReference    = "dangling_reference"
	ReasonConflictingPrimary   = "conflicting_primary"
	ReasonInvalidFormat        = "invalid_format"
)

// ValidationError wraps field-specific validation errors with a reason code
type ValidationError struct {
	Field   string
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s' (%s): %s", e.Field, e.Reason, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, reason, message string) error {
	return &ValidationError{
		Field:   field,
		Reason:  reason,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Routing resolution outcomes for phone numbers that don't map to an agent.
const (
	RouteReasonNoChannel      = "no_channel"
	RouteReasonNoPrimaryAgent = "no_primary_agent"
)

// RouteNotFoundError is returned by routing resolution when a phone
// number has no active channel or no active primary mapping. The caller
// owns the fallback behavior; this service never picks a default agent.
type RouteNotFoundError struct {
	PhoneNumber string
	Reason      string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route for %s: %s", e.PhoneNumber, e.Reason)
}
