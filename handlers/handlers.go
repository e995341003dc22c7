package handlers

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pagination"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/views"
)

// BannerDismissedKey is the visitor bucket flag hiding the artist banner.
const BannerDismissedKey = "banner_dismissed"

// ErrNoVisitor means the Visitor middleware did not run for the route.
var ErrNoVisitor = errors.New("handlers: visitor storage unavailable")

// visitor returns the bucket set by middlewares.Visitor.
func visitor(c storefront.Context) (*kv.Bucket, error) {
	b := middlewares.GetVisitor(c)
	if b == nil {
		return nil, ErrNoVisitor
	}
	return b, nil
}

// translator is bound to the language resolved by middlewares.I18n.
func translator(c storefront.Context, svc *i18n.I18n) locale.Translator {
	lang, ok := locale.Parse(middlewares.GetLanguage(c))
	if !ok {
		lang = locale.Default
	}
	return locale.NewTranslator(svc, lang)
}

// components adapts view components to the renderer's out-of-band list.
func components(cs ...templ.Component) []storefront.Component {
	out := make([]storefront.Component, len(cs))
	for i, comp := range cs {
		out[i] = comp
	}
	return out
}

// back returns the same-origin Referer, or fallback.
func back(c storefront.Context, fallback string) string {
	ref, err := url.Parse(c.Header("Referer"))
	if err != nil || ref.Path == "" {
		return fallback
	}
	if ref.Host != "" && ref.Host != c.Request().Host {
		return fallback
	}
	return ref.RequestURI()
}

// pages builds the models shared by several handlers.
type pages struct {
	catalog *catalog.Catalog
	carts   *cart.Store
	i18n    *i18n.I18n
}

// layout loads the visitor's cart for the header counter.
func (p *pages) layout(c storefront.Context, b *kv.Bucket, tr locale.Translator, title string) (views.Layout, *cart.Cart, error) {
	crt, err := p.carts.Load(c, b)
	if err != nil {
		return views.Layout{}, nil, err
	}
	return p.layoutWith(c, b, tr, title, crt), crt, nil
}

func (p *pages) layoutWith(c storefront.Context, b *kv.Bucket, tr locale.Translator, title string, crt *cart.Cart) views.Layout {
	hidden, err := kv.LoadOr(c, b, BannerDismissedKey, false)
	if err != nil {
		c.LogWarn("banner flag unavailable", slog.String("error", err.Error()))
	}
	return views.Layout{
		Tr:           tr,
		Title:        title,
		CartCount:    crt.Count(),
		BannerHidden: hidden,
	}
}

// shop builds the catalog page for s. The page number is clamped to the
// filtered product count.
func (p *pages) shop(c storefront.Context, b *kv.Bucket, tr locale.Translator, s pagination.State) (views.Shop, error) {
	l, crt, err := p.layout(c, b, tr, "")
	if err != nil {
		return views.Shop{}, err
	}
	page := pagination.Paginate(p.catalog.Filter(s.Query()), s)
	return views.NewShop(l, crt, s.WithPage(page.Number), page), nil
}

// cartView is the shop model limited to the header and cart panel.
func (p *pages) cartView(c storefront.Context, b *kv.Bucket, tr locale.Translator, crt *cart.Cart) views.Shop {
	l := p.layoutWith(c, b, tr, "", crt)
	return views.NewShop(l, crt, pagination.New(), pagination.Page[catalog.Product]{})
}

// oob marks v for out-of-band rendering.
func oob(v views.Shop) views.Shop {
	v.OOB = true
	return v
}
