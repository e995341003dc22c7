package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/storefront/middlewares"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/mailer"
	"github.com/dmitrymomot/storefront/pkg/mailer/resend"
	"github.com/dmitrymomot/storefront/pkg/payment"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	CookieSecret    string        `env:"COOKIE_SECRET"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
	CookieDomain    string        `env:"COOKIE_DOMAIN"`
	RedisURL        string        `env:"REDIS_URL"`
	VisitorTTL      time.Duration `env:"VISITOR_TTL" envDefault:"720h"`
	PaymentDelay    time.Duration `env:"CHECKOUT_PAYMENT_DELAY" envDefault:"2s"`
	SubmitTimeout   time.Duration `env:"CHECKOUT_SUBMIT_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	ContactInbox    string        `env:"CONTACT_INBOX" envDefault:"bonjour@mimoo.shop"`

	Log     logger.Config
	Payment payment.Config
	Mailer  mailer.Config
	Resend  resend.Config
}

func loadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = middlewares.DefaultTimeout
	}
	return cfg, nil
}
