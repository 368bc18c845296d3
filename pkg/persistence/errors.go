package persistence

import "errors"

var (
	// ErrEntityNotFound is returned when no document matches a lookup.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)
