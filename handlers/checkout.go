package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/checkout"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/validator"
	"github.com/dmitrymomot/storefront/views"
)

// CheckoutHandler serves the checkout form, the order summary and the
// payment submit.
type CheckoutHandler struct {
	checkout *checkout.Service
	pages    *pages
	timeout  time.Duration
}

// CheckoutOption configures a CheckoutHandler.
type CheckoutOption func(*CheckoutHandler)

// WithSubmitTimeout bounds the payment submit. It must exceed the
// simulated payment delay.
func WithSubmitTimeout(d time.Duration) CheckoutOption {
	return func(h *CheckoutHandler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewCheckout creates the checkout handler.
func NewCheckout(svc *checkout.Service, carts *cart.Store, i18nSvc *i18n.I18n, opts ...CheckoutOption) *CheckoutHandler {
	h := &CheckoutHandler{
		checkout: svc,
		pages:    &pages{carts: carts, i18n: i18nSvc},
		timeout:  middlewares.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements storefront.Handler.
func (h *CheckoutHandler) Routes(r storefront.Router) {
	r.Route("/checkout", func(r storefront.Router) {
		r.GET("/", h.show)
		r.POST("/", h.submit, middlewares.Timeout(h.timeout))
		r.GET("/summary", h.summary)
		r.POST("/delivery", h.delivery)
		r.POST("/promo", h.promo)
		r.POST("/payment-error/dismiss", h.dismissPaymentError)
	})
}

// show opens the checkout. An empty cart sends the visitor back to the shop.
func (h *CheckoutHandler) show(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	sum, err := h.checkout.Begin(c, b)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Render(http.StatusOK, views.CheckoutPage(h.view(c, b, sum)))
}

// summary re-renders the order summary, used when a promo error expires.
func (h *CheckoutHandler) summary(c storefront.Context) error {
	if !c.IsHTMX() {
		return c.Redirect(http.StatusSeeOther, "/checkout")
	}

	b, err := visitor(c)
	if err != nil {
		return err
	}
	sum, err := h.checkout.Summary(c, b)
	if err != nil {
		return err
	}
	if sum.Cart.IsEmpty() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, views.Summary(h.view(c, b, sum)))
}

func (h *CheckoutHandler) delivery(c storefront.Context) error {
	return h.edit(c, func(b *kv.Bucket) (checkout.Summary, error) {
		return h.checkout.SetDelivery(c, b, c.Form("delivery"))
	})
}

// promo applies a code. Rejected codes are reported inside the summary,
// so they are not request errors.
func (h *CheckoutHandler) promo(c storefront.Context) error {
	return h.edit(c, func(b *kv.Bucket) (checkout.Summary, error) {
		sum, err := h.checkout.ApplyPromo(c, b, c.Form("code"))
		switch {
		case errors.Is(err, checkout.ErrPromoEmpty),
			errors.Is(err, checkout.ErrPromoInvalid),
			errors.Is(err, checkout.ErrPromoAlreadyApplied):
			c.LogDebug("promo code rejected", "error", err)
			return sum, nil
		}
		return sum, err
	})
}

func (h *CheckoutHandler) dismissPaymentError(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}
	sum, err := h.checkout.DismissPaymentError(c, b)
	if err != nil {
		return h.fail(c, err)
	}
	if !c.IsHTMX() {
		return c.Redirect(http.StatusSeeOther, "/checkout")
	}
	return c.Render(http.StatusOK, views.PaymentAlert(h.view(c, b, sum)))
}

// edit runs a summary mutation and renders the summary.
func (h *CheckoutHandler) edit(c storefront.Context, fn func(*kv.Bucket) (checkout.Summary, error)) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}
	sum, err := fn(b)
	if err != nil {
		return h.fail(c, err)
	}
	if !c.IsHTMX() {
		return c.Redirect(http.StatusSeeOther, "/checkout")
	}
	return c.Render(http.StatusOK, views.Summary(h.view(c, b, sum)))
}

// submit validates the form and pays. Invalid forms come back with inline
// errors, declined payments with the payment alert, and a paid order
// redirects to its confirmation.
func (h *CheckoutHandler) submit(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		return storefront.ErrBadRequest("malformed checkout form", storefront.WithError(err))
	}

	tr := translator(c, h.pages.i18n)
	o, err := h.checkout.Submit(c, b, form, tr.Lang())
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, "/order-confirmation?order="+url.QueryEscape(o.ID))
	case validator.IsValidationError(err):
		return h.rerender(c, b, http.StatusUnprocessableEntity)
	case errors.Is(err, checkout.ErrPaymentDeclined):
		return h.rerender(c, b, http.StatusOK)
	default:
		return h.fail(c, err)
	}
}

// rerender shows the stored form again with its errors and payment alert.
func (h *CheckoutHandler) rerender(c storefront.Context, b *kv.Bucket, code int) error {
	sum, err := h.checkout.Summary(c, b)
	if err != nil {
		return err
	}
	v := h.view(c, b, sum)
	if !c.IsPartial() {
		return c.Render(code, views.CheckoutPage(v))
	}
	return c.Render(code, views.CheckoutForm(v), components(views.PaymentAlert(oobCheckout(v)))...)
}

// fail maps checkout errors to responses.
func (h *CheckoutHandler) fail(c storefront.Context, err error) error {
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		return c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, checkout.ErrPaymentInProgress):
		return storefront.ErrConflict(err.Error(),
			storefront.WithError(err),
			storefront.WithErrorCode(locale.KeyPaymentInProgress.String()),
		)
	}
	return err
}

// view builds the checkout model. Validation messages are translated on a
// copy so the stored session keeps its keys.
func (h *CheckoutHandler) view(c storefront.Context, b *kv.Bucket, sum checkout.Summary) views.Checkout {
	tr := translator(c, h.pages.i18n)
	l := h.pages.layoutWith(c, b, tr, tr.Text(locale.KeyCheckout), sum.Cart)

	var errs validator.ValidationErrors
	if sum.Session.State == checkout.Rejected {
		errs = slices.Clone(sum.Session.Errors)
		errs.Translate(tr.TranslateMessage)
	}
	return views.NewCheckout(l, sum, errs, h.checkout.PromoErrorTTL())
}

func oobCheckout(v views.Checkout) views.Checkout {
	v.OOB = true
	return v
}
