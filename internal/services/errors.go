package services

import "errors"

// Store-level error taxonomy. Handlers translate these into the HTTP
// status codes; raw GORM errors never leave this package.
var (
	// ErrInvalidInput marks malformed or missing input (bad role, bad
	// access level, too-short search query).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an absent entity on exact lookup.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation (duplicate email,
	// duplicate storage path).
	ErrConflict = errors.New("conflict")

	// ErrReference marks a broken reference: an operation names a user or
	// case that does not exist, or a delete would strand child rows.
	ErrReference = errors.New("reference integrity violation")
)
