package core

import "errors"

var (
	// ErrKeyNotFound is returned by a KeyValueStore when a key has no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrPostNotFound is returned by update operations targeting an id that
	// is not in the collection.
	ErrPostNotFound = errors.New("post not found")

	// ErrStorageWrite wraps persistence-layer write failures. The in-memory
	// collection the caller observed is unchanged when this is returned.
	ErrStorageWrite = errors.New("storage write failed")

	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidDate     = errors.New("invalid date")
)
