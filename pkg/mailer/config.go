package mailer

// Config holds the sender identity. Parsed from env with caarlos0/env.
type Config struct {
	FromEmail string `env:"MAILER_FROM_EMAIL" envDefault:"commandes@mimoo.shop"`
	FromName  string `env:"MAILER_FROM_NAME" envDefault:"Mimoo"`
	ReplyTo   string `env:"MAILER_REPLY_TO"`
}
