// Package views renders the storefront pages.
//
// Pages are html/template files embedded in the binary and exposed as
// templ components, so handlers pass them to Context.Render like any other
// component. Each page is parsed with the shared layout and partials.
//
// Parts of the shop page that carry translated text are registered as
// regions (see ShopRegions). When the visitor switches language, every
// registered region is sent back as an out-of-band swap in a single htmx
// response, so no text is left in the previous language.
package views
