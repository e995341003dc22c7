// Package storefront is the HTTP shell of the Mimoo shop: a chi based
// application with server-rendered pages, htmx fragments and per-visitor
// storage.
//
// The package is a thin facade over internal. Domain packages (catalog,
// cart, pagination, checkout, order, locale) know nothing about HTTP;
// the handlers package wires them to routes.
//
// # Quick Start
//
//	app := storefront.New(
//	    storefront.WithLogger(log),
//	    storefront.WithCookieOptions(storefront.WithCookieSecret(secret)),
//	    storefront.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.Visitor(store),
//	        middlewares.I18n(svc, middlewares.WithI18nNamespace(locale.Namespace)),
//	    ),
//	    storefront.WithHandlers(
//	        handlers.NewShop(products, carts, svc),
//	        handlers.NewCart(products, carts, svc),
//	    ),
//	)
//
//	if err := app.Run(":8080", storefront.Logger(log)); err != nil {
//	    log.Error("server error", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type CartHandler struct {
//	    carts *cart.Store
//	}
//
//	func (h *CartHandler) Routes(r storefront.Router) {
//	    r.Route("/cart", func(r storefront.Router) {
//	        r.GET("/", h.show)
//	        r.POST("/items/{id}", h.add)
//	    })
//	}
//
// A handler returns an error instead of writing one. The error handler set
// with [WithErrorHandler] turns it into a page, or into an htmx alert.
//
// # htmx
//
// [Context.Render] writes out-of-band components only for htmx requests.
// Non-200 answers to htmx requests are sent as 200 so htmx swaps them;
// redirects become HX-Redirect.
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM for graceful shutdown. Register cleanup
// functions with [ShutdownHook]:
//
//	app.Run(addr, storefront.ShutdownHook(redis.Shutdown(client)))
package storefront
