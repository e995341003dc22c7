// Package middlewares provides the HTTP middleware of the storefront.
//
// # Visitor
//
// Visitor identifies the browser with a signed cookie and exposes a
// kv.Bucket scoped to it. Everything the shop remembers about a visitor
// (cart, last order, language, banner, checkout session, grid state) is
// stored there.
//
//	storefront.WithMiddleware(
//	    middlewares.Visitor(store),
//	)
//
// # I18n
//
// I18n resolves the language from the stored preference, then
// Accept-Language, then the default, and stores a translator in the context.
// It must run after Visitor.
//
// # Request ID, Logging, Recover
//
// RequestID assigns an ID for tracing; RequestIDExtractor and
// VisitorIDExtractor add request_id and visitor_id to every log line.
// Logging writes one line per request. Recover turns panics into a
// PanicError for the ErrorHandler.
//
// # Timeout
//
// Timeout puts a deadline on the request context. Attach it to routes
// whose handlers block, such as checkout submission:
//
//	r.POST("/checkout", h.submit, middlewares.Timeout(10*time.Second))
//
// # Recommended Order
//
//	storefront.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Logging(),
//	    middlewares.Recover(),
//	    middlewares.Visitor(store),
//	    middlewares.I18n(svc, middlewares.WithI18nNamespace(locale.Namespace)),
//	)
package middlewares
