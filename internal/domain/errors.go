package domain

import "errors"

var (
	// ErrValidation signals a request that fails enum or field validation.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing record or saved search.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a write conflict. The atomic upsert primitive
	// makes this unreachable for records; kept for the transport mapping.
	ErrConflict = errors.New("conflict")
)
