package middlewares

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/internal"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

type visitorKey struct{}

type visitorIDKey struct{}

// Visitor defaults.
const (
	DefaultVisitorCookie = "mimoo_visitor"
	DefaultVisitorMaxAge = 365 * 24 * time.Hour
	DefaultVisitorTTL    = 30 * 24 * time.Hour
)

// VisitorConfig configures the Visitor middleware.
type VisitorConfig struct {
	Generator func() string // New visitor ID generator
	Cookie    string        // Signed cookie holding the visitor ID
	MaxAge    time.Duration // Cookie lifetime
	TTL       time.Duration // Lifetime of each stored value
}

// VisitorOption configures the Visitor middleware.
type VisitorOption func(*VisitorConfig)

// WithVisitorTTL sets how long stored values outlive the last write.
func WithVisitorTTL(d time.Duration) VisitorOption {
	return func(cfg *VisitorConfig) {
		if d > 0 {
			cfg.TTL = d
		}
	}
}

// WithVisitorGenerator replaces the UUID generator, mostly for tests.
func WithVisitorGenerator(gen func() string) VisitorOption {
	return func(cfg *VisitorConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// Visitor identifies the browser with a signed cookie and stores a kv.Bucket
// scoped to it in the request context. Cart, last order, preferences and
// checkout state all live in that bucket.
//
// A missing, tampered or malformed cookie starts a new visitor.
// The cookie manager must be configured with a secret.
func Visitor(store kv.Store, opts ...VisitorOption) internal.Middleware {
	cfg := &VisitorConfig{
		Cookie:    DefaultVisitorCookie,
		MaxAge:    DefaultVisitorMaxAge,
		TTL:       DefaultVisitorTTL,
		Generator: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id, err := c.CookieSigned(cfg.Cookie)
			if err != nil || uuid.Validate(id) != nil {
				id = cfg.Generator()
				if err := c.SetCookieSigned(cfg.Cookie, id, int(cfg.MaxAge.Seconds())); err != nil {
					return fmt.Errorf("visitor cookie: %w", err)
				}
				c.LogDebug("new visitor", slog.String("visitor_id", id))
			}

			bucket, err := kv.NewBucket(store, "visitor:"+id, cfg.TTL)
			if err != nil {
				return fmt.Errorf("visitor storage: %w", err)
			}

			c.Set(visitorIDKey{}, id)
			c.Set(visitorKey{}, bucket)

			return next(c)
		}
	}
}

// GetVisitor returns the visitor's storage bucket, or nil when the Visitor
// middleware did not run.
func GetVisitor(c internal.Context) *kv.Bucket {
	if v, ok := c.Get(visitorKey{}).(*kv.Bucket); ok {
		return v
	}
	return nil
}

// GetVisitorID returns the visitor ID, or "" when the middleware did not run.
func GetVisitorID(c internal.Context) string {
	return internal.ContextValue[string](c, visitorIDKey{})
}

// VisitorIDExtractor returns a logger.ContextExtractor adding visitor_id.
func VisitorIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(visitorIDKey{}).(string); ok && v != "" {
			return slog.String("visitor_id", v), true
		}
		return slog.Attr{}, false
	}
}
