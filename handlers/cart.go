package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/pagination"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/views"
)

// CartHandler mutates the visitor's cart. htmx requests get the cart panel
// back with the header counter swapped out of band; plain form posts are
// redirected to the page they came from.
type CartHandler struct {
	pages *pages
}

// NewCart creates the cart handler.
func NewCart(products *catalog.Catalog, carts *cart.Store, svc *i18n.I18n) *CartHandler {
	return &CartHandler{pages: &pages{catalog: products, carts: carts, i18n: svc}}
}

// productIDPattern restricts item routes to positive integers.
const productIDPattern = `[1-9][0-9]{0,8}`

// Routes implements storefront.Handler.
func (h *CartHandler) Routes(r storefront.Router) {
	r.Route("/cart", func(r storefront.Router) {
		r.GET("/", h.show)
		r.POST("/items/{id:"+productIDPattern+"}", h.add)
		r.POST("/items/{id:"+productIDPattern+"}/quantity", h.setQuantity)
		r.POST("/items/{id:"+productIDPattern+"}/delete", h.remove)
	})
}

// show renders the cart panel, or the whole shop for a full page load.
func (h *CartHandler) show(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}
	tr := translator(c, h.pages.i18n)

	if c.IsPartial() {
		crt, err := h.pages.carts.Load(c, b)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, views.CartPanel(h.pages.cartView(c, b, tr, crt)))
	}

	s, err := pagination.Load(c, b)
	if err != nil {
		c.LogWarn("grid state unavailable", "error", err)
	}
	v, err := h.pages.shop(c, b, tr, s)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.ShopPage(v))
}

func (h *CartHandler) add(c storefront.Context) error {
	p, err := h.pages.catalog.ByID(storefront.Param[int](c, "id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		return storefront.ErrNotFound("product not found", storefront.WithError(err))
	}
	if err != nil {
		return err
	}

	return h.update(c, func(b *kv.Bucket) (*cart.Cart, error) {
		return h.pages.carts.Add(c, b, p)
	}, func(tr locale.Translator) string {
		return tr.Text(locale.KeyItemAdded, i18n.M{"name": p.Name})
	})
}

func (h *CartHandler) setQuantity(c storefront.Context) error {
	qty, err := storefront.FormValue[int](c, "quantity")
	if err != nil {
		return storefront.ErrBadRequest("invalid quantity", storefront.WithError(err))
	}
	id := storefront.Param[int](c, "id")

	return h.update(c, func(b *kv.Bucket) (*cart.Cart, error) {
		return h.pages.carts.SetQuantity(c, b, id, qty)
	}, nil)
}

func (h *CartHandler) remove(c storefront.Context) error {
	id := storefront.Param[int](c, "id")

	return h.update(c, func(b *kv.Bucket) (*cart.Cart, error) {
		return h.pages.carts.Remove(c, b, id)
	}, nil)
}

// update applies fn to the visitor's cart and responds. notice, when set,
// is the confirmation shown in the panel.
func (h *CartHandler) update(c storefront.Context, fn func(*kv.Bucket) (*cart.Cart, error), notice func(locale.Translator) string) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	crt, err := fn(b)
	if errors.Is(err, cart.ErrItemNotFound) {
		return storefront.ErrNotFound("item not in cart", storefront.WithError(err))
	}
	if err != nil {
		return err
	}

	if !c.IsHTMX() {
		return c.Redirect(http.StatusSeeOther, back(c, "/"))
	}

	tr := translator(c, h.pages.i18n)
	v := h.pages.cartView(c, b, tr, crt)
	if notice != nil {
		v.Added = notice(tr)
	}
	return c.Render(http.StatusOK, views.CartPanel(v), components(views.Header(oob(v)))...)
}
