package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/internal"
)

func TestTypedValues(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/items/{id}", func(c internal.Context) error {
			return c.String(http.StatusOK, fmt.Sprintf("%d|%d|%t|%s",
				internal.Param[int](c, "id"),
				internal.QueryDefault(c, "size", 6),
				internal.Query[bool](c, "popular"),
				internal.Query[string](c, "q"),
			))
		})
		r.POST("/qty", func(c internal.Context) error {
			n, err := internal.FormValue[int](c, "quantity")
			switch {
			case errors.Is(err, internal.ErrMissingValue):
				return c.String(http.StatusBadRequest, "missing")
			case err != nil:
				return c.String(http.StatusBadRequest, "malformed")
			}
			return c.String(http.StatusOK, strconv.Itoa(n))
		})
	})))

	tests := []struct {
		target string
		want   string
	}{
		{target: "/items/7?size=12&popular=true&q=fox", want: "7|12|true|fox"},
		{target: "/items/abc?size=many", want: "0|6|false|"},
		{target: "/items/3", want: "3|6|false|"},
	}
	for _, tt := range tests {
		rec := serve(t, app, httptest.NewRequest(http.MethodGet, tt.target, nil))
		require.Equal(t, tt.want, rec.Body.String(), tt.target)
	}

	post := func(body string) string {
		req := httptest.NewRequest(http.MethodPost, "/qty", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return serve(t, app, req).Body.String()
	}
	require.Equal(t, "4", post("quantity=+4+"))
	require.Equal(t, "missing", post("quantity=+"))
	require.Equal(t, "malformed", post("quantity=lots"))
}
