package repository

import "errors"

var (
	// ErrNotFound is returned when no document matches the given filter.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)
