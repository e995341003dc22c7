package kv

import "errors"

var (
	// ErrNotFound is returned when a key does not exist or has expired.
	ErrNotFound = errors.New("kv: key not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("kv: store closed")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("kv: stored value is corrupt")

	// ErrMarshal is returned when a value cannot be encoded for storage.
	ErrMarshal = errors.New("kv: failed to marshal value")

	// ErrEmptyScope is returned when a bucket is created without a scope.
	ErrEmptyScope = errors.New("kv: empty bucket scope")
)
