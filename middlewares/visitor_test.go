package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/internal"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pkg/kv"
)

const visitorA = "6f1c0c1e-6f0a-4b8e-9a43-6d1f7c0f2a11"

func TestVisitor(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	app := newApp(func(c internal.Context) error {
		b := middlewares.GetVisitor(c)
		require.NotNil(t, b)
		require.Equal(t, "visitor:"+middlewares.GetVisitorID(c), b.Scope())

		n, _ := b.Get(c, "hits")
		next := append(n, 'x')
		require.NoError(t, b.Set(c, "hits", next))
		return c.String(http.StatusOK, string(next))
	}, middlewares.Visitor(store, middlewares.WithVisitorGenerator(func() string { return visitorA })))

	t.Run("new visitor gets a signed cookie", func(t *testing.T) {
		rec := get(t, app, nil)
		require.Equal(t, "x", rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, middlewares.DefaultVisitorCookie, cookies[0].Name)
		require.True(t, cookies[0].HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])
		rec = get(t, app, req)
		require.Equal(t, "xx", rec.Body.String())
		require.Empty(t, rec.Result().Cookies(), "known visitor keeps its cookie")
	})

	t.Run("tampered cookie starts over", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middlewares.DefaultVisitorCookie, Value: "forged.value"})
		rec := get(t, app, req)
		require.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestVisitorWithoutSecret(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.Visitor(kv.NewMemory())),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.String(http.StatusInternalServerError, err.Error())
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	rec := get(t, app, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "visitor cookie")
}

func TestGetVisitorWithoutMiddleware(t *testing.T) {
	t.Parallel()

	app := newApp(func(c internal.Context) error {
		require.Nil(t, middlewares.GetVisitor(c))
		require.Empty(t, middlewares.GetVisitorID(c))
		return c.NoContent(http.StatusOK)
	})
	require.Equal(t, http.StatusOK, get(t, app, nil).Code)
}

func TestVisitorIDExtractor(t *testing.T) {
	t.Parallel()

	extract := middlewares.VisitorIDExtractor()

	_, ok := extract(context.Background())
	require.False(t, ok)

	app := newApp(func(c internal.Context) error {
		attr, ok := extract(c)
		require.True(t, ok)
		require.Equal(t, slog.String("visitor_id", visitorA), attr)
		return c.NoContent(http.StatusOK)
	}, middlewares.Visitor(kv.NewMemory(), middlewares.WithVisitorGenerator(func() string { return visitorA })))
	require.Equal(t, http.StatusOK, get(t, app, nil).Code)
}
