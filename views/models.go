package views

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/checkout"
	"github.com/dmitrymomot/storefront/contact"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pagination"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Layout is the data shared by every page.
type Layout struct {
	Tr           locale.Translator
	Title        string
	CartCount    int
	BannerHidden bool
	// OOB marks a region rendered as an out-of-band swap.
	OOB bool
}

// T translates a key by name. Unknown names are returned unchanged.
func (l Layout) T(name string) string {
	return l.Tr.T(name)
}

// Text translates a typed key.
func (l Layout) Text(k locale.Key) string {
	return l.Tr.Text(k)
}

// Money formats an amount in the page language.
func (l Layout) Money(d decimal.Decimal) string {
	return l.Tr.Money(d)
}

// Date formats a date in the long form of the page language.
func (l Layout) Date(t time.Time) string {
	return l.Tr.FormatLongDate(t)
}

// Items is the pluralized item count, "1 item" or "3 articles".
func (l Layout) Items(n int) string {
	return l.Tr.Count("items", n)
}

// Lang is the page language code.
func (l Layout) Lang() string {
	return string(l.Tr.Lang())
}

// Languages lists the language switch entries.
func (l Layout) Languages() []string {
	langs := locale.Supported()
	out := make([]string, len(langs))
	for i, lang := range langs {
		out[i] = string(lang)
	}
	return out
}

// PageTitle is the document title.
func (l Layout) PageTitle() string {
	site := l.T(locale.KeySiteTitle.String())
	if l.Title == "" {
		return site
	}
	return l.Title + " | " + site
}

// Country is the display name of a country code.
func (l Layout) Country(code string) string {
	return order.CountryName(code, l.Tr.Lang())
}

var categoryKeys = map[catalog.Category]locale.Key{
	catalog.All:       locale.KeyAllProducts,
	catalog.Keychains: locale.KeyKeychains,
	catalog.Prints:    locale.KeyPrints,
	catalog.Badges:    locale.KeyBadges,
	catalog.Charms:    locale.KeyCharms,
}

// Category is the translated label of a category.
func (l Layout) Category(c catalog.Category) string {
	if k, ok := categoryKeys[c]; ok {
		return l.Text(k)
	}
	return string(c)
}

// Shop is the catalog page: grid, filters, pagination and cart.
type Shop struct {
	Layout
	Cart       *cart.Cart
	Added      string
	State      pagination.State
	Page       pagination.Page[catalog.Product]
	Categories []catalog.Category
	Sizes      []int
	Inquiry    ContactForm
}

// NewShop builds the catalog page model.
func NewShop(l Layout, c *cart.Cart, s pagination.State, p pagination.Page[catalog.Product]) Shop {
	if c == nil {
		c = &cart.Cart{}
	}
	return Shop{
		Layout:     l,
		Cart:       c,
		State:      s,
		Page:       p,
		Categories: append([]catalog.Category{catalog.All}, catalog.Categories()...),
		Sizes:      pagination.Sizes(),
	}
}

// Query encodes the view state with page n, for links and htmx requests.
func (s Shop) Query(page int) string {
	return s.query(s.State.Category, s.State.Size, page)
}

// CategoryQuery encodes the view state filtered on c, back on page 1.
func (s Shop) CategoryQuery(c catalog.Category) string {
	return s.query(c, s.State.Size, 1)
}

func (s Shop) query(c catalog.Category, size, page int) string {
	v := url.Values{}
	v.Set("category", string(c))
	if s.State.Search != "" {
		v.Set("q", s.State.Search)
	}
	v.Set("size", strconv.Itoa(size))
	v.Set("page", strconv.Itoa(page))
	return "?" + v.Encode()
}

// Subtotal is the cart total before shipping and tax.
func (s Shop) Subtotal() decimal.Decimal {
	return s.Cart.Subtotal()
}

// Contact is the contact section of the shop page.
func (s Shop) Contact() Contact {
	return Contact{Layout: s.Layout, ContactForm: s.Inquiry}
}

// ContactForm is the state of the contact form. Errors must already be
// translated.
type ContactForm struct {
	Errors validator.ValidationErrors
	Form   contact.Message
	Sent   bool
}

// Contact is the contact section model.
type Contact struct {
	Layout
	ContactForm
}

// FieldError is the first error message of field.
func (c Contact) FieldError(field string) string {
	return c.Errors.First(field)
}

// Invalid reports whether field failed validation.
func (c Contact) Invalid(field string) bool {
	return c.Errors.Has(field)
}

// Checkout is the checkout page.
type Checkout struct {
	Layout
	Summary    checkout.Summary
	Form       checkout.Form
	Errors     validator.ValidationErrors
	Deliveries []order.DeliveryOption
	Countries  []string
	Methods    []order.PaymentMethod
	// PromoErrorTTL is how long the promo error stays before the summary
	// refreshes itself.
	PromoErrorTTL time.Duration
}

// NewCheckout builds the checkout page model. Errors must already be
// translated.
func NewCheckout(l Layout, sum checkout.Summary, errs validator.ValidationErrors, promoTTL time.Duration) Checkout {
	return Checkout{
		Layout:        l,
		Summary:       sum,
		Form:          sum.Session.Form.WithoutCard(),
		Errors:        errs,
		Deliveries:    order.DeliveryOptions(),
		Countries:     order.CountryCodes(),
		Methods:       order.PaymentMethods(),
		PromoErrorTTL: promoTTL,
	}
}

// FieldError is the first error message of field.
func (c Checkout) FieldError(field string) string {
	return c.Errors.First(field)
}

// Invalid reports whether field failed validation.
func (c Checkout) Invalid(field string) bool {
	return c.Errors.Has(field)
}

// Selected reports whether d is the chosen delivery method.
func (c Checkout) Selected(d order.Delivery) bool {
	return c.Summary.Session.Delivery == d
}

// PaymentSelected reports whether m is the active payment tab.
func (c Checkout) PaymentSelected(m order.PaymentMethod) bool {
	return c.Form.Method() == m
}

// PaymentError is the translated payment alert, or "".
func (c Checkout) PaymentError() string {
	if c.Summary.Session.PaymentError == "" {
		return ""
	}
	return c.Tr.Text(locale.KeyPaymentFailed, i18n.M{"reason": c.Summary.Session.PaymentError})
}

// PromoMessage is the confirmation shown once a promo is applied.
func (c Checkout) PromoMessage() string {
	if !c.Summary.HasPromo {
		return ""
	}
	return c.Tr.Text(locale.KeyPromoAppliedMessage, i18n.M{"label": c.Text(c.Summary.Promo.Label)})
}

// PromoRefreshDelay is the hx-trigger delay clearing the promo error.
func (c Checkout) PromoRefreshDelay() string {
	return strconv.FormatInt(c.PromoErrorTTL.Milliseconds(), 10) + "ms"
}

// Locked reports whether the form is waiting for a payment.
func (c Checkout) Locked() bool {
	return !c.Summary.Session.State.Editable()
}

// Confirmation is the order confirmation page.
type Confirmation struct {
	Layout
	Order      order.Order
	Estimate   time.Time
	Newsletter NewsletterForm
	Demo       bool
	// Review opens the review dialog on a full page load.
	Review bool
}

// Signup is the newsletter section of the confirmation page. The address
// defaults to the order email.
func (c Confirmation) Signup() Newsletter {
	n := Newsletter{Layout: c.Layout, NewsletterForm: c.Newsletter}
	if n.Email == "" {
		n.Email = c.Order.Customer.Email
	}
	return n
}

// Reviews lists the platforms offered in the review dialog.
func (c Confirmation) Reviews() []ReviewLink {
	return reviewLinks
}

// ReviewLink is one platform of the review dialog.
type ReviewLink struct {
	Name string
	Icon string
	URL  string
}

var reviewLinks = []ReviewLink{
	{Name: "Google", Icon: "🌟", URL: "https://google.com/maps/place/mimoo-store"},
	{Name: "Facebook", Icon: "👍", URL: "https://facebook.com/mimoostore"},
	{Name: "Trustpilot", Icon: "⭐", URL: "https://trustpilot.com/review/mimoo-store.com"},
}

// NewsletterForm is the state of the newsletter sign-up. Errors must
// already be translated.
type NewsletterForm struct {
	Errors     validator.ValidationErrors
	Email      string
	Subscribed bool
}

// Newsletter is the newsletter section model.
type Newsletter struct {
	Layout
	NewsletterForm
}

// FieldError is the first error message of field.
func (n Newsletter) FieldError(field string) string {
	return n.Errors.First(field)
}

// DeliveryLabel is the translated delivery method and lead time.
func (c Confirmation) DeliveryLabel() string {
	opt := c.Order.Delivery.Option()
	return c.Text(opt.Label) + " (" + c.Text(opt.Time) + ")"
}

// PaymentLabel is the payment method, with the card ending when known.
func (c Confirmation) PaymentLabel() string {
	return c.Order.PaymentLabel(c.Tr)
}

// Expected is the translated delivery estimate sentence.
func (c Confirmation) Expected() string {
	return c.Tr.Text(locale.KeyDeliveryExpected, i18n.M{"date": c.Date(c.Estimate)})
}

// Error is an error page or alert.
type Error struct {
	Layout
	Message string
	Code    int
}
