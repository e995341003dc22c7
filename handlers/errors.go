package handlers

import (
	"net/http"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pkg/htmx"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/views"
)

// ErrorHandler renders handler errors. htmx requests get the alert swapped
// out of band while the target stays untouched; other requests get the
// error page. Visitor-facing text never exposes the error message: it
// comes from the error code key or from the status.
func ErrorHandler(svc *i18n.I18n, carts *cart.Store) storefront.ErrorHandler {
	return func(c storefront.Context, err error) error {
		code := http.StatusInternalServerError
		key := locale.KeyErrorGeneric

		if herr := storefront.AsHTTPError(err); herr != nil {
			code = herr.Code
			if k, ok := locale.KeyByName(herr.ErrorCode); ok {
				key = k
			} else if code == http.StatusNotFound {
				key = locale.KeyErrorNotFound
			}
		} else if middlewares.IsTimeoutError(err) {
			code = http.StatusGatewayTimeout
		}

		if code >= http.StatusInternalServerError {
			c.LogError("request failed", "error", err, "status", code)
		}

		tr := translator(c, svc)
		v := views.Error{
			Layout:  views.Layout{Tr: tr, Title: tr.Text(locale.KeyErrorTitle)},
			Message: tr.Text(key),
			Code:    code,
		}
		if b := middlewares.GetVisitor(c); b != nil {
			if crt, lerr := carts.Load(c, b); lerr == nil {
				v.CartCount = crt.Count()
			}
		}

		if c.IsHTMX() {
			c.SetHeader(htmx.HeaderHXReswap, string(htmx.SwapNone))
			return c.Render(code, views.ErrorAlert(v))
		}
		return c.Render(code, views.ErrorPage(v))
	}
}

// NotFound is the handler of unknown routes.
func NotFound(c storefront.Context) error {
	return storefront.ErrNotFound("no route for " + c.Request().URL.Path)
}

// MethodNotAllowed is the handler of known routes hit with another method.
func MethodNotAllowed(c storefront.Context) error {
	return storefront.ErrMethodNotAllowed(c.Request().Method + " not allowed on " + c.Request().URL.Path)
}
