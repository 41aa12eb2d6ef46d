package domain

import "errors"

// ErrInvalidOrder is returned, wrapped in a *ValidationError, when an order
// violates the field bounds.
var ErrInvalidOrder = errors.New("invalid_order")

// ValidationError represents an order validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes errors.Is(err, ErrInvalidOrder) hold for every
// ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidOrder
}
