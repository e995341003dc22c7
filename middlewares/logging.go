package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/storefront/internal"
)

// Logging logs one line per request after the handler returns, with the
// status the handler chose (before the HTMX 200 rewrite). Server errors
// are logged at error level, client errors at warn.
func Logging() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				status = http.StatusInternalServerError
				if he := internal.AsHTTPError(err); he != nil {
					status = he.Code
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("htmx", c.IsHTMX()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request", append(attrs, slog.Any("error", err))...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
