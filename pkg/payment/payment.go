package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// Config points at the payment-intent endpoint. The gateway path is used
// only when both values are set.
type Config struct {
	IntentURL string `env:"PAYMENT_INTENT_URL"`
	APIKey    string `env:"PAYMENT_API_KEY"`
}

// Enabled reports whether a gateway is configured.
func (c Config) Enabled() bool { return c.IntentURL != "" && c.APIKey != "" }

// IntentRequest is the body posted to the gateway.
type IntentRequest struct {
	OrderData      any    `json:"orderData"`
	Currency       string `json:"currency"`
	IdempotencyKey string `json:"-"`
	Amount         int64  `json:"amount"`
}

// Intent is the gateway answer. ClientSecret is opaque.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// Client creates payment intents over JSON HTTP.
type Client struct {
	endpoint *url.URL
	http     *http.Client
	apiKey   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient validates cfg and returns a client for it.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	u, err := url.Parse(cfg.IntentURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid intent url %q", ErrNotConfigured, cfg.IntentURL)
	}

	c := &Client{
		endpoint: u,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateIntent posts req and decodes the intent.
// 4xx answers are declines; 5xx and transport failures are gateway errors.
func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Currency == "" {
		req.Currency = "eur"
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("payment: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errors.Join(ErrGateway, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrDeclined, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, errors.Join(ErrInvalidResponse, err)
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", ErrInvalidResponse)
	}
	return &intent, nil
}

// Cents converts a euro amount to integer cents, rounding half away from zero.
func Cents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
