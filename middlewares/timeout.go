package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/storefront/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 20 * time.Second

// Timeout bounds the request context with a deadline. The handler runs on
// the request goroutine, so it owns the response until it returns; blocking
// work such as the simulated payment delay observes ctx.Done and unwinds.
//
// When the deadline passed and the handler failed, the error becomes a
// TimeoutError for the ErrorHandler.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.LogWarn("request timeout", "timeout", timeout.String(), "error", err)
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
