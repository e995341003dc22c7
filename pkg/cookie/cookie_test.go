package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/cookie"
)

const secret = "0123456789abcdef0123456789abcdef"

func roundTrip(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_Plain(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true))

	w := httptest.NewRecorder()
	m.Set(w, "lang", "fr", 3600)

	c := w.Result().Cookies()[0]
	require.True(t, c.Secure)
	require.True(t, c.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Equal(t, "/", c.Path)

	v, err := m.Get(roundTrip(t, w), "lang")
	require.NoError(t, err)
	require.Equal(t, "fr", v)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "lang")
	require.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	cookie.New().Delete(w, "visitor")

	c := w.Result().Cookies()[0]
	require.Equal(t, "visitor", c.Name)
	require.Negative(t, c.MaxAge)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	t.Run("round trips", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(secret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "visitor", "abc-123", 0))

		v, err := m.GetSigned(roundTrip(t, w), "visitor")
		require.NoError(t, err)
		require.Equal(t, "abc-123", v)
	})

	t.Run("rejects tampered value", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(secret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "visitor", "abc-123", 0))

		c := w.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, ".")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "visitor", Value: "ZXZpbA." + sig})

		_, err := m.GetSigned(r, "visitor")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("rejects value signed with another secret", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, cookie.New(cookie.WithSecret(secret)).SetSigned(w, "visitor", "abc", 0))

		other := cookie.New(cookie.WithSecret(strings.Repeat("x", 32)))
		_, err := other.GetSigned(roundTrip(t, w), "visitor")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("requires a secret", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret("short"))
		require.ErrorIs(t, m.SetSigned(httptest.NewRecorder(), "visitor", "abc", 0), cookie.ErrNoSecret)
	})
}

func TestValidateSecret(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, cookie.ValidateSecret(""), cookie.ErrNoSecret)
	require.ErrorIs(t, cookie.ValidateSecret("short"), cookie.ErrBadSecret)
	require.NoError(t, cookie.ValidateSecret(secret))
}
