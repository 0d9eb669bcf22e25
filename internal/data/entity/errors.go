package entity

import "errors"

// Sentinel errors surfaced to callers unchanged (no internal retry).
// Handlers map these to HTTP classes with errors.Is.
var (
	// ErrDuplicateEmail - identity uniqueness violation (case-insensitive)
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidItem - order line item fails validation
	ErrInvalidItem = errors.New("invalid order item")

	// ErrNotFound - record does not exist
	ErrNotFound = errors.New("not found")
)
