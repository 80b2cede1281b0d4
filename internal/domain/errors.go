package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ranking service.
var (
	// ErrInvalidRequest indicates the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoDestinations indicates there is nothing to rank.
	ErrNoDestinations = errors.New("no destinations to rank")

	// ErrDestinationNotFound indicates a requested destination id does not exist.
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrStoreUnavailable indicates the destination store could not be queried.
	ErrStoreUnavailable = errors.New("destination store unavailable")
)

// ValidationError is a single field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StoreError wraps a failure from a destination store.
type StoreError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports every StoreError as ErrStoreUnavailable.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// NewStoreError creates a non-retryable store error.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// NewRetryableStoreError creates a store error worth retrying (connection loss, timeouts).
func NewRetryableStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err, Retryable: true}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNoDestinations checks if the error means there was nothing to rank.
func IsNoDestinations(err error) bool {
	return errors.Is(err, ErrNoDestinations)
}

// IsNotFound checks if the error is a missing destination error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDestinationNotFound)
}

// IsStoreUnavailable checks if the error came from the destination store.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsRetryable checks if the error is a retryable store error.
func IsRetryable(err error) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Retryable
	}
	return false
}
