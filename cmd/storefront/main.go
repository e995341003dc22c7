// Command storefront serves the Mimoo shop.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

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
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/mailer"
	"github.com/dmitrymomot/storefront/pkg/mailer/resend"
	"github.com/dmitrymomot/storefront/pkg/payment"
	"github.com/dmitrymomot/storefront/pkg/redis"
	"github.com/dmitrymomot/storefront/views"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, flush := logger.New(cfg.Log, middlewares.RequestIDExtractor(), middlewares.VisitorIDExtractor())
	defer flush(2 * time.Second)
	log = log.With(slog.String("app", "storefront"))

	if cfg.CookieSecret == "" {
		cfg.CookieSecret = randomSecret()
		log.Warn("COOKIE_SECRET is not set, visitor cookies will not survive a restart")
	}

	products, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	svc, err := locale.NewI18n(log)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	ctx := context.Background()
	var (
		store     kv.Store
		readiness []storefront.HealthOption
		startup   []storefront.RunOption
	)
	if cfg.RedisURL != "" {
		client, err := redis.Open(ctx, cfg.RedisURL, redis.WithRetry(3, time.Second))
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		store = kv.NewRedis(client, kv.WithPrefix("mimoo"))
		readiness = append(readiness, storefront.WithReadinessCheck("redis", redis.Healthcheck(client)))
		startup = append(startup, storefront.StartupHook(redis.Healthcheck(client)))
		log.Info("visitor storage: redis")
	} else {
		store = kv.NewMemory()
		log.Info("visitor storage: memory")
	}

	carts := cart.NewStore(log)
	orders := order.NewRepository(log)
	sender := newSender(cfg, log)
	inquiries := contact.NewService(
		mailer.New(sender, mailer.NewRenderer(contact.Emails()), cfg.Mailer),
		log,
		contact.WithInbox(cfg.ContactInbox),
	)

	opts := []checkout.Option{
		checkout.WithDelay(cfg.PaymentDelay),
		checkout.WithNotifier(order.NewNotifier(mailer.New(sender, mailer.NewRenderer(order.Emails()), cfg.Mailer), svc)),
	}
	if cfg.Payment.Enabled() {
		gateway, err := payment.NewClient(cfg.Payment)
		if err != nil {
			return fmt.Errorf("payment gateway: %w", err)
		}
		opts = append(opts, checkout.WithGateway(gateway))
		log.Info("payments: gateway", slog.String("endpoint", cfg.Payment.IntentURL))
	} else {
		log.Info("payments: simulated", slog.Duration("delay", cfg.PaymentDelay))
	}
	service := checkout.NewService(carts, orders, log, opts...)

	app := storefront.New(
		storefront.WithLogger(log),
		storefront.WithCookieOptions(
			storefront.WithCookieSecret(cfg.CookieSecret),
			storefront.WithCookieSecure(cfg.CookieSecure),
			storefront.WithCookieDomain(cfg.CookieDomain),
		),
		storefront.WithStaticFiles("/static/", views.Assets(), "static"),
		storefront.WithHealthChecks(readiness...),
		storefront.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Logging(),
			middlewares.Visitor(store, middlewares.WithVisitorTTL(cfg.VisitorTTL)),
			middlewares.I18n(svc,
				middlewares.WithI18nNamespace(locale.Namespace),
				middlewares.WithI18nFormatMap(map[string]*i18n.LocaleFormat{
					string(locale.English): locale.Format(locale.English),
					string(locale.French):  locale.Format(locale.French),
				}),
			),
		),
		storefront.WithErrorHandler(handlers.ErrorHandler(svc, carts)),
		storefront.WithNotFoundHandler(handlers.NotFound),
		storefront.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		storefront.WithHandlers(
			handlers.NewShop(products, carts, svc),
			handlers.NewCart(products, carts, svc),
			handlers.NewCheckout(service, carts, svc, handlers.WithSubmitTimeout(cfg.SubmitTimeout)),
			handlers.NewOrder(orders, inquiries, carts, svc),
			handlers.NewContact(inquiries, products, carts, svc),
		),
	)

	return app.Run(cfg.Addr, append(startup,
		storefront.Logger(log),
		storefront.ShutdownTimeout(cfg.ShutdownTimeout),
		storefront.ShutdownHook(redis.Shutdown(store)),
	)...)
}

// newSender delivers through Resend when an API key is set and logs the
// messages otherwise.
func newSender(cfg Config, log *slog.Logger) mailer.Sender {
	if cfg.Resend.Enabled() {
		return resend.New(cfg.Resend)
	}
	return mailer.LogSender(log)
}

func randomSecret() string {
	b := make([]byte, cookie.MinSecretLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
