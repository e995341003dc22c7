package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/internal"
	"github.com/dmitrymomot/storefront/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	app := newApp(func(c internal.Context) error {
		return c.String(http.StatusOK, middlewares.GetRequestID(c))
	}, middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "generated" })))

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"generated when missing", nil, "generated"},
		{"reuses request id", map[string]string{"X-Request-ID": "abc-123"}, "abc-123"},
		{"falls back to correlation id", map[string]string{"X-Correlation-ID": "corr-1"}, "corr-1"},
		{"rejects spaces", map[string]string{"X-Request-ID": "has space"}, "generated"},
		{"rejects control characters", map[string]string{"X-Request-ID": "a\tb"}, "generated"},
		{"rejects oversized ids", map[string]string{"X-Request-ID": strings.Repeat("a", 129)}, "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := get(t, app, req)
			require.Equal(t, tt.want, rec.Body.String())
			require.Equal(t, tt.want, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequestIDDefaultGenerator(t *testing.T) {
	t.Parallel()

	app := newApp(func(c internal.Context) error {
		return c.String(http.StatusOK, middlewares.GetRequestID(c))
	}, middlewares.RequestID())

	first := get(t, app, nil).Body.String()
	second := get(t, app, nil).Body.String()
	require.Len(t, first, 26)
	require.NotEqual(t, first, second)
}

func TestRequestIDCustomResponseHeader(t *testing.T) {
	t.Parallel()

	app := newApp(func(c internal.Context) error {
		return c.NoContent(http.StatusOK)
	}, middlewares.RequestID(
		middlewares.WithRequestIDHeaders("X-Trace"),
		middlewares.WithRequestIDResponseHeader("X-Trace"),
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace", "trace-7")
	rec := get(t, app, req)
	require.Equal(t, "trace-7", rec.Header().Get("X-Trace"))
	require.Empty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extract := middlewares.RequestIDExtractor()
	_, ok := extract(context.Background())
	require.False(t, ok)

	app := newApp(func(c internal.Context) error {
		attr, ok := extract(c)
		require.True(t, ok)
		require.Equal(t, slog.String("request_id", "req-1"), attr)
		return c.NoContent(http.StatusOK)
	}, middlewares.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	require.Equal(t, http.StatusOK, get(t, app, req).Code)
}
