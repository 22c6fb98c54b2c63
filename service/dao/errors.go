package dao

import "errors"

// Sentinel repository errors, matched with errors.Is.
var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID indicates that the supplied key is empty or reserved.
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity is returned when the caller attempts to persist a nil
	// pointer.
	ErrNilEntity = errors.New("dao: nil entity")

	// ErrDuplicateID is returned when two entities share a key where keys
	// must be unique.
	ErrDuplicateID = errors.New("dao: duplicate id")
)
