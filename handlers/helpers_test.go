package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/checkout"
	"github.com/dmitrymomot/storefront/contact"
	"github.com/dmitrymomot/storefront/handlers"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/cookie"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/mailer"
	"github.com/dmitrymomot/storefront/pkg/payment"
)

var testSecret = strings.Repeat("s", cookie.MinSecretLength)

// testProducts spans two grid pages at the default size.
var testProducts = []catalog.Product{
	{ID: 1, Name: "Sakura Keychain", Category: catalog.Keychains, Price: decimal.RequireFromString("12.50"), Emoji: "🌸", Popular: true},
	{ID: 2, Name: "Fox Keychain", Category: catalog.Keychains, Price: decimal.RequireFromString("9.90"), Emoji: "🦊"},
	{ID: 3, Name: "Moon Print", Category: catalog.Prints, Price: decimal.RequireFromString("18.00"), Emoji: "🌙"},
	{ID: 4, Name: "Forest Print", Category: catalog.Prints, Price: decimal.RequireFromString("22.00"), Emoji: "🌲"},
	{ID: 5, Name: "Star Badge", Category: catalog.Badges, Price: decimal.RequireFromString("4.50"), Emoji: "⭐"},
	{ID: 6, Name: "Cat Badge", Category: catalog.Badges, Price: decimal.RequireFromString("4.50"), Emoji: "🐱"},
	{ID: 7, Name: "Frog Charm", Category: catalog.Charms, Price: decimal.RequireFromString("7.00"), Emoji: "🐸"},
	{ID: 8, Name: "Cloud Charm", Category: catalog.Charms, Price: decimal.RequireFromString("6.00"), Emoji: "☁️"},
}

// gatewayFunc adapts a function to checkout.Gateway.
type gatewayFunc func(context.Context, payment.IntentRequest) (*payment.Intent, error)

func (f gatewayFunc) CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	return f(ctx, req)
}

// outbox records the emails sent by the contact service.
type outbox struct {
	mu   sync.Mutex
	sent []*mailer.Email
}

func (o *outbox) Send(_ context.Context, e *mailer.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, e)
	return nil
}

func (o *outbox) emails() []*mailer.Email {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*mailer.Email(nil), o.sent...)
}

// client is a browser against the full application: it keeps the visitor
// cookie and does not follow redirects.
type client struct {
	t    *testing.T
	srv  *httptest.Server
	http *http.Client
	mail *outbox
}

func newClient(t *testing.T, opts ...checkout.Option) *client {
	t.Helper()

	log := logger.NewNope()
	store := kv.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	svc, err := locale.NewI18n(nil)
	require.NoError(t, err)
	products, err := catalog.New(testProducts)
	require.NoError(t, err)

	carts := cart.NewStore(log)
	orders := order.NewRepository(log)
	service := checkout.NewService(carts, orders, log, append([]checkout.Option{checkout.WithDelay(0)}, opts...)...)
	mail := &outbox{}
	inquiries := contact.NewService(
		mailer.New(mail, mailer.NewRenderer(contact.Emails()), mailer.Config{FromEmail: "shop@mimoo.test"}),
		log,
		contact.WithInbox("hello@mimoo.test"),
	)

	app := storefront.New(
		storefront.WithLogger(log),
		storefront.WithCookieOptions(storefront.WithCookieSecret(testSecret)),
		storefront.WithMiddleware(
			middlewares.Recover(),
			middlewares.Visitor(store),
			middlewares.I18n(svc, middlewares.WithI18nNamespace(locale.Namespace)),
		),
		storefront.WithErrorHandler(handlers.ErrorHandler(svc, carts)),
		storefront.WithNotFoundHandler(handlers.NotFound),
		storefront.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		storefront.WithHandlers(
			handlers.NewShop(products, carts, svc),
			handlers.NewCart(products, carts, svc),
			handlers.NewCheckout(service, carts, svc),
			handlers.NewOrder(orders, inquiries, carts, svc),
			handlers.NewContact(inquiries, products, carts, svc),
		),
	)

	srv := httptest.NewServer(app)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &client{
		t:    t,
		srv:  srv,
		mail: mail,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// response is a drained HTTP response.
type response struct {
	header http.Header
	body   string
	status int
}

func (c *client) do(method, path string, form url.Values, header map[string]string) response {
	c.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(c.t.Context(), method, c.srv.URL+path, body)
	require.NoError(c.t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	res, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(c.t, err)
	return response{status: res.StatusCode, header: res.Header, body: string(data)}
}

func (c *client) get(path string) response {
	c.t.Helper()
	return c.do(http.MethodGet, path, nil, nil)
}

func (c *client) post(path string, form url.Values) response {
	c.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return c.do(http.MethodPost, path, form, nil)
}

func (c *client) hxGet(path string) response {
	c.t.Helper()
	return c.do(http.MethodGet, path, nil, hx(""))
}

func (c *client) hxPost(path string, form url.Values) response {
	c.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return c.do(http.MethodPost, path, form, hx(""))
}

// hx returns htmx request headers, issued from currentPath when set.
func hx(currentPath string) map[string]string {
	h := map[string]string{"HX-Request": "true"}
	if currentPath != "" {
		h["HX-Current-URL"] = "http://localhost" + currentPath
	}
	return h
}

// validForm is a checkout form that passes validation.
func validForm() url.Values {
	return url.Values{
		"firstName":  {"Aiko"},
		"lastName":   {"Tanaka"},
		"email":      {"aiko@example.com"},
		"phone":      {"0601020304"},
		"address":    {"12 rue des Lilas"},
		"city":       {"Lyon"},
		"postalCode": {"69001"},
		"country":    {"FR"},
		"terms":      {"true"},
		"privacy":    {"true"},

		"paymentMethod": {"card"},
		"cardHolder":    {"Aiko Tanaka"},
		"cardNumber":    {"4242 4242 4242 4242"},
		"cardExpiry":    {"12/39"},
		"cardCvc":       {"123"},
	}
}
