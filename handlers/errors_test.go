package handlers_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/handlers"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// routes adapts a function to storefront.Handler.
type routes func(storefront.Router)

func (f routes) Routes(r storefront.Router) { f(r) }

func TestErrorHandler_Routes(t *testing.T) {
	t.Parallel()

	t.Run("unknown route renders the error page", func(t *testing.T) {
		t.Parallel()
		c := newClient(t)

		res := c.get("/nope")
		assert.Equal(t, http.StatusNotFound, res.status)
		assert.Contains(t, res.body, "<!doctype html>")
		assert.Contains(t, res.body, "Oops!")
		assert.Contains(t, res.body, "This page does not exist.")
		assert.NotContains(t, res.body, "no route for")
	})

	t.Run("htmx error is an out of band alert", func(t *testing.T) {
		t.Parallel()
		c := newClient(t)

		res := c.hxGet("/nope")
		assert.Equal(t, http.StatusOK, res.status)
		assert.Equal(t, "none", res.header.Get("HX-Reswap"))
		assert.Contains(t, res.body, `<div id="alert" class="alert-slot" aria-live="polite" hx-swap-oob="true">`)
		assert.NotContains(t, res.body, "<!doctype html>")
	})

	t.Run("wrong method", func(t *testing.T) {
		t.Parallel()
		c := newClient(t)

		res := c.get("/cart/items/1")
		assert.Equal(t, http.StatusMethodNotAllowed, res.status)
		assert.Contains(t, res.body, "Something went wrong. Please try again.")
	})

	t.Run("error page keeps the cart counter", func(t *testing.T) {
		t.Parallel()
		c := newClient(t)
		c.hxPost("/cart/items/1", nil)

		res := c.get("/nope")
		assert.Contains(t, res.body, `data-count="1"`)
	})
}

func TestErrorHandler_Codes(t *testing.T) {
	t.Parallel()

	svc, err := locale.NewI18n(nil)
	require.NoError(t, err)

	app := storefront.New(
		storefront.WithLogger(logger.NewNope()),
		storefront.WithCookieOptions(storefront.WithCookieSecret(testSecret)),
		storefront.WithErrorHandler(handlers.ErrorHandler(svc, cart.NewStore(logger.NewNope()))),
		storefront.WithHandlers(routes(func(r storefront.Router) {
			r.GET("/conflict", func(storefront.Context) error {
				return storefront.ErrConflict("payment running",
					storefront.WithErrorCode(locale.KeyPaymentInProgress.String()))
			})
			r.GET("/boom", func(storefront.Context) error {
				return errors.New("database on fire")
			})
			r.GET("/slow", func(c storefront.Context) error {
				<-c.Context().Done()
				return c.Context().Err()
			}, middlewares.Timeout(10*time.Millisecond))
		})),
	)

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{name: "error code selects the message", path: "/conflict", status: http.StatusConflict, message: "A payment is already in progress."},
		{name: "internal error text stays private", path: "/boom", status: http.StatusInternalServerError, message: "Something went wrong. Please try again."},
		{name: "timeout", path: "/slow", status: http.StatusGatewayTimeout, message: "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)

			body, err := io.ReadAll(rec.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, string(body), tt.message)
			assert.NotContains(t, string(body), "database on fire")
		})
	}
}
