// Package internal provides the HTTP shell of the storefront: the App,
// its Router adapter over chi, the request Context and the response writer.
//
// This package is internal. Import "github.com/dmitrymomot/storefront",
// which re-exports the public API.
//
// # Core Types
//
//   - App: HTTP routing, middleware, health checks and graceful shutdown
//   - Context: request/response access, rendering, cookies and translation
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to the
// domain services:
//
//	func (h *Cart) add(c storefront.Context) error {
//	    crt, err := h.carts.Add(c, visitor, product)
//	    ...
//	}
//
// # Rendering
//
// Render and RenderPartial accept templ compatible components. For HTMX
// requests extra components are appended as out-of-band swaps, which is how
// a language switch refreshes every translated region in one response:
//
//	return c.RenderPartial(http.StatusOK, page, grid, pagination, cart)
//
// Non-200 statuses are sent as 200 to HTMX so the swap still happens; the
// wrapped ResponseWriter keeps the original code for logging.
//
// # Errors
//
// Handlers return errors; the App passes them to the ErrorHandler configured
// with WithErrorHandler. HTTPError carries the status code and a translation
// key for the message shown to the visitor.
package internal
