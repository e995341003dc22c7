package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/contact"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/views"
)

// OrderHandler renders the order confirmation, its review dialog and its
// text receipt.
type OrderHandler struct {
	orders  *order.Repository
	contact *contact.Service
	pages   *pages
}

// NewOrder creates the order handler. The contact service tells whether
// the visitor already subscribed to the newsletter.
func NewOrder(orders *order.Repository, subscriptions *contact.Service, carts *cart.Store, svc *i18n.I18n) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		contact: subscriptions,
		pages:   &pages{carts: carts, i18n: svc},
	}
}

// Routes implements storefront.Handler.
func (h *OrderHandler) Routes(r storefront.Router) {
	r.GET("/order-confirmation", h.show)
	r.GET("/order-confirmation/receipt", h.receipt)
	r.GET("/order-confirmation/review", h.review)
}

// show renders the confirmation of ?order=. Without an id the visitor is
// sent back to the shop; an id that is not the visitor's last order shows
// the sample order.
func (h *OrderHandler) show(c storefront.Context) error {
	v, err := h.confirmation(c)
	if errors.Is(err, order.ErrMissingOrderID) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.ConfirmationPage(v))
}

// review opens the review dialog. htmx requests get the dialog alone; a
// plain request gets the confirmation page with the dialog open.
func (h *OrderHandler) review(c storefront.Context) error {
	v, err := h.confirmation(c)
	if errors.Is(err, order.ErrMissingOrderID) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err != nil {
		return err
	}
	v.Review = true
	return c.RenderPartial(http.StatusOK, views.ConfirmationPage(v), views.ReviewDialog(v))
}

func (h *OrderHandler) confirmation(c storefront.Context) (views.Confirmation, error) {
	b, err := visitor(c)
	if err != nil {
		return views.Confirmation{}, err
	}

	res, err := h.orders.Resolve(c, b, c.Query("order"))
	if err != nil {
		return views.Confirmation{}, err
	}

	tr := translator(c, h.pages.i18n)
	l, _, err := h.pages.layout(c, b, tr, tr.Text(locale.KeyPaymentSuccess))
	if err != nil {
		return views.Confirmation{}, err
	}

	subscribed := res.Order.Newsletter
	if h.contact != nil && !subscribed {
		_, ok, err := h.contact.Subscribed(c, b)
		if err != nil {
			c.LogWarn("newsletter subscription unavailable", slog.String("error", err.Error()))
		}
		subscribed = ok
	}

	return views.Confirmation{
		Layout:     l,
		Order:      res.Order,
		Estimate:   order.EstimateDelivery(res.Order.Delivery, time.Now()),
		Newsletter: views.NewsletterForm{Subscribed: subscribed},
		Demo:       res.Demo,
	}, nil
}

// receipt downloads the text receipt of ?order=.
func (h *OrderHandler) receipt(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	res, err := h.orders.Resolve(c, b, c.Query("order"))
	if errors.Is(err, order.ErrMissingOrderID) {
		return storefront.ErrNotFound("missing order id", storefront.WithError(err))
	}
	if err != nil {
		return err
	}

	tr := translator(c, h.pages.i18n)
	return c.Attachment(order.ReceiptFilename(res.Order.ID), order.ReceiptContentType, order.Receipt(res.Order, tr))
}
