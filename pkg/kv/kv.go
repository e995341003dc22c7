package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Store is a byte-oriented key-value store with TTL support.
// It backs everything a visitor keeps between requests: cart contents,
// the last order, language preference and UI flags.
//
// TTL semantics for Set:
//   - Positive duration: value expires after this duration
//   - Zero: use the store's configured default TTL
//   - Negative: value never expires
type Store interface {
	// Get returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Bucket scopes keys of a Store under a single owner, usually a visitor id.
// Keys are stored as "{scope}:{key}".
type Bucket struct {
	store Store
	scope string
	ttl   time.Duration
}

// NewBucket returns a bucket writing values with the given ttl.
func NewBucket(store Store, scope string, ttl time.Duration) (*Bucket, error) {
	if scope == "" {
		return nil, ErrEmptyScope
	}
	return &Bucket{store: store, scope: scope, ttl: ttl}, nil
}

// Scope returns the bucket owner.
func (b *Bucket) Scope() string {
	return b.scope
}

func (b *Bucket) key(k string) string {
	return b.scope + ":" + k
}

// Get returns the raw value stored under key.
func (b *Bucket) Get(ctx context.Context, key string) ([]byte, error) {
	return b.store.Get(ctx, b.key(key))
}

// Set stores the raw value under key using the bucket TTL.
func (b *Bucket) Set(ctx context.Context, key string, value []byte) error {
	return b.store.Set(ctx, b.key(key), value, b.ttl)
}

// Delete removes key from the bucket.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	return b.store.Delete(ctx, b.key(key))
}

// Load decodes the JSON value stored under key.
// Returns ErrNotFound when nothing is stored and ErrCorrupt when the stored
// bytes cannot be decoded into T.
func Load[T any](ctx context.Context, b *Bucket, key string) (T, error) {
	var v T

	data, err := b.Get(ctx, key)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, errors.Join(ErrCorrupt, err)
	}

	return v, nil
}

// Save encodes v as JSON and stores it under key.
func Save[T any](ctx context.Context, b *Bucket, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	return b.Set(ctx, key, data)
}

// LoadOr behaves like Load but returns def when the key is missing or its
// value is corrupt. Any other error is returned as is.
func LoadOr[T any](ctx context.Context, b *Bucket, key string, def T) (T, error) {
	v, err := Load[T](ctx, b, key)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
		return def, nil
	default:
		return def, err
	}
}
