package cart

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/pkg/kv"
)

// StorageKey is the visitor bucket key holding the cart snapshot.
const StorageKey = "cart"

// Store persists carts in a visitor bucket. Every mutation writes the
// full snapshot.
type Store struct {
	log *slog.Logger
}

// NewStore creates a Store.
func NewStore(log *slog.Logger) *Store {
	return &Store{log: log.With(slog.String("component", "cart"))}
}

// Load returns the visitor's cart. Missing or unreadable data yields an
// empty cart; corruption is logged, never returned.
func (s *Store) Load(ctx context.Context, b *kv.Bucket) (*Cart, error) {
	c, err := kv.Load[Cart](ctx, b, StorageKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return &Cart{}, nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.WarnContext(ctx, "discarding unreadable cart", slog.String("error", err.Error()))
		return &Cart{}, nil
	case err != nil:
		return nil, err
	}

	if c.normalize() {
		s.log.WarnContext(ctx, "dropped invalid cart lines")
	}
	return &c, nil
}

// Save writes the snapshot.
func (s *Store) Save(ctx context.Context, b *kv.Bucket, c *Cart) error {
	return kv.Save(ctx, b, StorageKey, c)
}

// Add loads the cart, adds p and persists it.
func (s *Store) Add(ctx context.Context, b *kv.Bucket, p catalog.Product) (*Cart, error) {
	return s.update(ctx, b, func(c *Cart) error {
		c.Add(p)
		return nil
	})
}

// Remove loads the cart, removes productID and persists it.
func (s *Store) Remove(ctx context.Context, b *kv.Bucket, productID int) (*Cart, error) {
	return s.update(ctx, b, func(c *Cart) error { return c.Remove(productID) })
}

// SetQuantity loads the cart, sets the quantity and persists it.
func (s *Store) SetQuantity(ctx context.Context, b *kv.Bucket, productID, qty int) (*Cart, error) {
	return s.update(ctx, b, func(c *Cart) error { return c.SetQuantity(productID, qty) })
}

// Clear deletes the persisted cart.
func (s *Store) Clear(ctx context.Context, b *kv.Bucket) error {
	return b.Delete(ctx, StorageKey)
}

func (s *Store) update(ctx context.Context, b *kv.Bucket, fn func(*Cart) error) (*Cart, error) {
	c, err := s.Load(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return c, err
	}
	if err := s.Save(ctx, b, c); err != nil {
		return nil, err
	}
	return c, nil
}
