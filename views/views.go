package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/a-h/templ"
)

//go:embed templates static
var files embed.FS

// Assets returns the embedded static files, rooted above "static".
func Assets() fs.FS {
	return files
}

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"add":   func(a, b int) int { return a + b },
}

var (
	shopPage         = parsePage("shop.html")
	checkoutPage     = parsePage("checkout.html")
	confirmationPage = parsePage("confirmation.html")
	errorPage        = parsePage("error.html")
)

// parsePage parses a page together with the layout and every partial.
// Templates are embedded, so a parse failure is a build defect.
func parsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(files,
		"templates/layout.html",
		"templates/partials/*.html",
		"templates/pages/"+name,
	))
}

// component executes the named template of t with data.
func component(t *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, name, data)
	})
}

// ShopPage is the full catalog page.
func ShopPage(v Shop) templ.Component { return component(shopPage, "layout", v) }

// Grid is the product grid, the target of filter and pagination requests.
func Grid(v Shop) templ.Component { return component(shopPage, "grid", v) }

// Pagination is the page navigation under the grid.
func Pagination(v Shop) templ.Component { return component(shopPage, "pagination", v) }

// Filters is the category, search and page size bar.
func Filters(v Shop) templ.Component { return component(shopPage, "filters", v) }

// CartPanel lists the cart content.
func CartPanel(v Shop) templ.Component { return component(shopPage, "cart", v) }

// Header is the site header with the cart counter and language switch.
func Header(v Shop) templ.Component { return component(shopPage, "header", v) }

// Banner is the artist notice, or the link restoring it.
func Banner(v Shop) templ.Component { return component(shopPage, "banner", v) }

// Hero is the shop introduction.
func Hero(v Shop) templ.Component { return component(shopPage, "hero", v) }

// ContactSection is the contact form, or its thank-you note once sent.
func ContactSection(v Contact) templ.Component { return component(shopPage, "contact", v) }

// CheckoutPage is the full checkout page.
func CheckoutPage(v Checkout) templ.Component { return component(checkoutPage, "layout", v) }

// CheckoutForm is the delivery form with inline errors.
func CheckoutForm(v Checkout) templ.Component { return component(checkoutPage, "checkout_form", v) }

// Summary is the order summary with delivery and promo controls.
func Summary(v Checkout) templ.Component { return component(checkoutPage, "summary", v) }

// PaymentAlert is the dismissible payment error.
func PaymentAlert(v Checkout) templ.Component { return component(checkoutPage, "payment_alert", v) }

// ConfirmationPage shows a placed order.
func ConfirmationPage(v Confirmation) templ.Component {
	return component(confirmationPage, "layout", v)
}

// NewsletterSignup is the newsletter form of the confirmation page.
func NewsletterSignup(v Newsletter) templ.Component {
	return component(confirmationPage, "newsletter", v)
}

// ReviewDialog is the modal listing review platforms.
func ReviewDialog(v Confirmation) templ.Component {
	return component(confirmationPage, "review", v)
}

// ErrorPage is the full error page.
func ErrorPage(v Error) templ.Component { return component(errorPage, "layout", v) }

// ErrorAlert is the error message swapped into the alert slot of any page.
func ErrorAlert(v Error) templ.Component { return component(errorPage, "alert", v) }
