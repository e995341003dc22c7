package handlers

import (
	"net/http"
	"slices"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/contact"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/pagination"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/validator"
	"github.com/dmitrymomot/storefront/views"
)

// ContactHandler serves the contact form and the newsletter sign-up.
type ContactHandler struct {
	contact *contact.Service
	pages   *pages
}

// NewContact creates the contact handler.
func NewContact(svc *contact.Service, products *catalog.Catalog, carts *cart.Store, i18nSvc *i18n.I18n) *ContactHandler {
	return &ContactHandler{
		contact: svc,
		pages:   &pages{catalog: products, carts: carts, i18n: i18nSvc},
	}
}

// Routes implements storefront.Handler.
func (h *ContactHandler) Routes(r storefront.Router) {
	r.POST("/contact", h.send)
	r.POST("/newsletter", h.subscribe)
}

// send forwards the contact form. htmx requests get the section back,
// with inline errors or the thank-you note. A plain post goes back to the
// referring page, or shows the shop again with the errors.
func (h *ContactHandler) send(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	var msg contact.Message
	if err := c.Bind(&msg); err != nil {
		return storefront.ErrBadRequest("malformed contact form", storefront.WithError(err))
	}

	tr := translator(c, h.pages.i18n)
	sent, err := h.contact.Send(c, msg, tr.Lang())
	code := http.StatusOK
	form := views.ContactForm{Sent: true}
	switch {
	case err == nil:
		if !c.IsHTMX() {
			return c.Redirect(http.StatusSeeOther, back(c, "/"))
		}
	case validator.IsValidationError(err):
		code = http.StatusUnprocessableEntity
		form = views.ContactForm{Form: sent, Errors: translated(tr, err)}
	default:
		return err
	}

	if !c.IsPartial() {
		v, err := h.pages.shop(c, b, tr, pagination.New())
		if err != nil {
			return err
		}
		v.Inquiry = form
		return c.Render(code, views.ShopPage(v))
	}

	l, _, err := h.pages.layout(c, b, tr, "")
	if err != nil {
		return err
	}
	return c.Render(code, views.ContactSection(views.Contact{Layout: l, ContactForm: form}))
}

// subscribe signs the visitor up to the newsletter. htmx requests get the
// sign-up section back; a plain post returns to the referring page, or to
// the error page when the address is invalid.
func (h *ContactHandler) subscribe(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	tr := translator(c, h.pages.i18n)
	sub, err := h.contact.Subscribe(c, b, c.Form("email"), tr.Lang())
	code := http.StatusOK
	form := views.NewsletterForm{Email: sub.Email, Subscribed: true}
	switch {
	case err == nil:
		if !c.IsHTMX() {
			return c.Redirect(http.StatusSeeOther, back(c, "/"))
		}
	case validator.IsValidationError(err):
		if !c.IsHTMX() {
			key := validator.ExtractValidationErrors(err)[0].TranslationKey
			return storefront.ErrBadRequest("invalid newsletter address",
				storefront.WithError(err),
				storefront.WithErrorCode(key),
			)
		}
		code = http.StatusUnprocessableEntity
		form = views.NewsletterForm{Email: sub.Email, Errors: translated(tr, err)}
	default:
		return err
	}

	l, _, err := h.pages.layout(c, b, tr, tr.Text(locale.KeyNewsletterTitle))
	if err != nil {
		return err
	}
	return c.Render(code, views.NewsletterSignup(views.Newsletter{Layout: l, NewsletterForm: form}))
}

// translated returns the validation errors of err in the visitor's
// language, leaving err untouched.
func translated(tr locale.Translator, err error) validator.ValidationErrors {
	errs := slices.Clone(validator.ExtractValidationErrors(err))
	errs.Translate(tr.TranslateMessage)
	return errs
}
