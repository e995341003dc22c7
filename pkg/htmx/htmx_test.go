package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/htmx"
)

func TestRequestDetection(t *testing.T) {
	t.Parallel()

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.False(t, htmx.IsHTMX(r))
		assert.False(t, htmx.IsPartial(r))
	})

	t.Run("htmx request", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(htmx.HeaderHXRequest, "true")
		r.Header.Set(htmx.HeaderHXTarget, "product-grid")
		assert.True(t, htmx.IsHTMX(r))
		assert.True(t, htmx.IsPartial(r))
		assert.Equal(t, "product-grid", htmx.Target(r))
	})

	t.Run("boosted request wants a full page", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(htmx.HeaderHXRequest, "true")
		r.Header.Set(htmx.HeaderHXBoosted, "true")
		assert.True(t, htmx.IsBoosted(r))
		assert.False(t, htmx.IsPartial(r))
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		r.Header.Set(htmx.HeaderHXRequest, "true")
		w := httptest.NewRecorder()

		htmx.Redirect(w, r, "/order-confirmation?order=1", http.StatusSeeOther)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "/order-confirmation?order=1", w.Header().Get(htmx.HeaderHXRedirect))
	})

	t.Run("plain request gets a redirect", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		w := httptest.NewRecorder()

		htmx.Redirect(w, r, "/", http.StatusSeeOther)

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestTrigger(t *testing.T) {
	t.Parallel()

	t.Run("plain event", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.Trigger(w, map[string]any{"cart-updated": nil})
		require.Equal(t, "cart-updated", w.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("event with detail", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.Trigger(w, map[string]any{"cart-updated": map[string]int{"count": 2}})
		require.JSONEq(t, `{"cart-updated":{"count":2}}`, w.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("no events", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.Trigger(w, nil)
		require.Empty(t, w.Header().Get(htmx.HeaderHXTrigger))
	})
}

func TestOOB(t *testing.T) {
	t.Parallel()

	require.Equal(t, "true", htmx.OOB(""))
	require.Equal(t, "true", htmx.OOB(htmx.SwapOuterHTML))
	require.Equal(t, "innerHTML", htmx.OOB(htmx.SwapInnerHTML))
}
