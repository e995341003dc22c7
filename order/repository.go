package order

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/storefront/pkg/kv"
)

// StorageKey is the visitor bucket key holding the last order.
const StorageKey = "last_order"

// Resolution is the order to display and whether it is the sample order.
type Resolution struct {
	Order Order
	Demo  bool
}

// Repository keeps the last order of each visitor.
type Repository struct {
	log *slog.Logger
	now func() time.Time
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRepository creates a Repository.
func NewRepository(log *slog.Logger, opts ...RepositoryOption) *Repository {
	r := &Repository{
		log: log.With(slog.String("component", "order")),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SaveLast stores o as the visitor's last order, replacing any previous one.
func (r *Repository) SaveLast(ctx context.Context, b *kv.Bucket, o Order) error {
	return kv.Save(ctx, b, StorageKey, o)
}

// Last returns the visitor's last order.
func (r *Repository) Last(ctx context.Context, b *kv.Bucket) (Order, error) {
	o, err := kv.Load[Order](ctx, b, StorageKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return Order{}, ErrNoLastOrder
	case errors.Is(err, kv.ErrCorrupt):
		r.log.WarnContext(ctx, "discarding unreadable last order", slog.String("error", err.Error()))
		return Order{}, ErrNoLastOrder
	}
	return o, err
}

// Resolve finds the order to show for id. A blank id is ErrMissingOrderID.
// When the visitor's last order does not match, the sample order is
// returned and the mismatch is logged.
func (r *Repository) Resolve(ctx context.Context, b *kv.Bucket, id string) (Resolution, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Resolution{}, ErrMissingOrderID
	}

	last, err := r.Last(ctx, b)
	if err != nil && !errors.Is(err, ErrNoLastOrder) {
		return Resolution{}, err
	}
	if err == nil && last.ID == id {
		return Resolution{Order: last}, nil
	}

	r.log.WarnContext(ctx, "order not found, showing sample order",
		slog.String("requested_id", id),
		slog.String("last_order_id", last.ID),
	)
	return Resolution{Order: Demo(id, r.now()), Demo: true}, nil
}
