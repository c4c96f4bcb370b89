// Package model defines the domain types shared across the service and the
// error values handlers translate into HTTP responses.
package model

import "errors"

// ValidationError reports a caller-supplied input that violates a deck
// selection precondition.  Handlers translate it into an HTTP 400 with the
// VALIDATION_ERROR payload; it is never retried and never fatal.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ErrStoreUnavailable is returned when a catalog-backed operation is invoked
// while no store handle could be established.  The rest of the service keeps
// answering; only store-dependent endpoints surface it.
var ErrStoreUnavailable = errors.New("catalog store not initialized")
