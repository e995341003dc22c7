package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/storefront/internal"
	"github.com/dmitrymomot/storefront/pkg/cookie"
)

var testSecret = strings.Repeat("k", cookie.MinSecretLength)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// newApp serves h at GET / with mw as route middleware, so every layer
// sees the handler error. Errors are rendered as their message with the
// HTTPError code or 500.
func newApp(h internal.HandlerFunc, mw ...internal.Middleware) *internal.App {
	return internal.New(
		internal.WithCookieOptions(cookie.WithSecret(testSecret)),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			code := http.StatusInternalServerError
			if he := internal.AsHTTPError(err); he != nil {
				code = he.Code
			}
			return c.String(code, err.Error())
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", h, mw...)
		})),
	)
}

func get(t *testing.T, app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if req == nil {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
