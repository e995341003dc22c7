package resend

// Config holds Resend credentials. Parsed from env with caarlos0/env.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
}

// Enabled reports whether an API key is configured.
func (c Config) Enabled() bool { return c.APIKey != "" }
