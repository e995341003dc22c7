// Package handlers declares the storefront routes.
//
// Every handler is a struct built with its dependencies and registered
// with storefront.WithHandlers:
//
//	storefront.New(
//	    storefront.WithHandlers(
//	        handlers.NewShop(products, carts, i18nSvc),
//	        handlers.NewCart(products, carts, i18nSvc),
//	        handlers.NewCheckout(service, carts, i18nSvc),
//	        handlers.NewOrder(orders, inquiries, carts, i18nSvc),
//	        handlers.NewContact(inquiries, products, carts, i18nSvc),
//	    ),
//	    storefront.WithErrorHandler(handlers.ErrorHandler(i18nSvc, carts)),
//	)
//
// Handlers read the visitor bucket and the request language from
// middlewares.Visitor and middlewares.I18n, which must run first. htmx
// requests get fragments with out-of-band swaps; plain form posts are
// answered with a redirect so the site works without JavaScript.
package handlers
