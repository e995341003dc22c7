package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pagination"
	"github.com/dmitrymomot/storefront/pkg/htmx"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/views"
)

// ShopHandler serves the catalog page, the language switch and the banner.
type ShopHandler struct {
	pages   *pages
	regions *views.Regions
}

// NewShop creates the shop handler. The translatable regions of the page
// are registered once here and re-rendered together on a language switch.
func NewShop(products *catalog.Catalog, carts *cart.Store, svc *i18n.I18n) *ShopHandler {
	return &ShopHandler{
		pages:   &pages{catalog: products, carts: carts, i18n: svc},
		regions: views.ShopRegions(),
	}
}

// Routes implements storefront.Handler.
func (h *ShopHandler) Routes(r storefront.Router) {
	r.GET("/", h.list)
	r.GET("/products", h.list)
	r.POST("/language/{lang}", h.language)
	r.POST("/banner/dismiss", h.dismissBanner)
	r.POST("/banner/reset", h.resetBanner)
}

// list renders the catalog. Filter, search, size and page come from the
// query and fall back to the visitor's last view; the result is stored back
// so a language switch re-renders the same slice.
func (h *ShopHandler) list(c storefront.Context) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	v, err := h.pages.shop(c, b, translator(c, h.pages.i18n), h.state(c, b))
	if err != nil {
		return err
	}
	if err := pagination.Save(c, b, v.State); err != nil {
		c.LogWarn("failed to save grid state", slog.String("error", err.Error()))
	}

	return c.RenderPartial(http.StatusOK,
		views.ShopPage(v),
		views.Grid(v),
		components(views.Pagination(oob(v)), views.Filters(oob(v)))...,
	)
}

// state merges the query parameters present on the request into the stored
// grid state. Unknown categories show every product.
func (h *ShopHandler) state(c storefront.Context, b *kv.Bucket) pagination.State {
	s, err := pagination.Load(c, b)
	if err != nil {
		c.LogWarn("grid state unavailable", slog.String("error", err.Error()))
	}

	q := c.Request().URL.Query()
	if q.Has("category") {
		cat, ok := catalog.ParseCategory(q.Get("category"))
		if !ok {
			cat = catalog.All
		}
		s = s.WithCategory(cat)
	}
	if q.Has("q") {
		s = s.WithSearch(q.Get("q"))
	}
	if q.Has("size") {
		s = s.WithSize(storefront.Query[int](c, "size"))
	}
	if q.Has("page") {
		s = s.WithPage(storefront.Query[int](c, "page"))
	}
	return s
}

// language stores the visitor's language. On the shop page every
// registered region is re-rendered out of band in the new language; other
// pages are refreshed.
func (h *ShopHandler) language(c storefront.Context) error {
	lang, ok := locale.Parse(c.Param("lang"))
	if !ok {
		return storefront.ErrNotFound("unsupported language: " + c.Param("lang"))
	}

	b, err := visitor(c)
	if err != nil {
		return err
	}
	if err := b.Set(c, middlewares.LanguagePreferenceKey, []byte(lang)); err != nil {
		return err
	}
	c.LogInfo("language changed", slog.String("lang", string(lang)))

	if !c.IsHTMX() {
		return c.Redirect(http.StatusSeeOther, back(c, "/"))
	}
	if !onShopPage(c) {
		c.SetHeader(htmx.HeaderHXRefresh, "true")
		return c.NoContent(http.StatusOK)
	}

	s, err := pagination.Load(c, b)
	if err != nil {
		c.LogWarn("grid state unavailable", slog.String("error", err.Error()))
	}
	v, err := h.pages.shop(c, b, locale.NewTranslator(h.pages.i18n, lang), s)
	if err != nil {
		return err
	}

	c.SetHeader("Content-Language", string(lang))
	return c.Render(http.StatusOK, templ.NopComponent, components(h.regions.OOB(v)...)...)
}

// onShopPage reports whether the htmx request was issued from the catalog.
func onShopPage(c storefront.Context) bool {
	u, err := url.Parse(c.Header(htmx.HeaderHXCurrentURL))
	if err != nil {
		return false
	}
	return u.Path == "/" || u.Path == ""
}

func (h *ShopHandler) dismissBanner(c storefront.Context) error {
	return h.banner(c, true)
}

func (h *ShopHandler) resetBanner(c storefront.Context) error {
	return h.banner(c, false)
}

func (h *ShopHandler) banner(c storefront.Context, hidden bool) error {
	b, err := visitor(c)
	if err != nil {
		return err
	}

	if hidden {
		err = kv.Save(c, b, BannerDismissedKey, true)
	} else {
		err = b.Delete(c, BannerDismissedKey)
	}
	if err != nil {
		return err
	}

	if !c.IsHTMX() {
		return c.Redirect(http.StatusSeeOther, back(c, "/"))
	}

	crt, err := h.pages.carts.Load(c, b)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.Banner(h.pages.cartView(c, b, translator(c, h.pages.i18n), crt)))
}
