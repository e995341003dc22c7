package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/payment"
)

func newClient(t *testing.T, h http.HandlerFunc) *payment.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := payment.NewClient(
		payment.Config{IntentURL: srv.URL + "/create-payment-intent", APIKey: "sk_test"},
		payment.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return c
}

func TestCreateIntent(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/create-payment-intent", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			assert.Equal(t, "MIMOO-1", r.Header.Get("Idempotency-Key"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.InDelta(t, 4078, body["amount"], 0)
			assert.Equal(t, "eur", body["currency"])
			assert.NotNil(t, body["orderData"])

			_ = json.NewEncoder(w).Encode(map[string]string{"id": "pi_1", "client_secret": "pi_1_secret", "status": "requires_confirmation"})
		})

		intent, err := c.CreateIntent(context.Background(), payment.IntentRequest{
			Amount:         4078,
			OrderData:      map[string]string{"id": "MIMOO-1"},
			IdempotencyKey: "MIMOO-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_1", intent.ID)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	})

	t.Run("declined", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "card_declined", http.StatusPaymentRequired)
		})
		_, err := c.CreateIntent(context.Background(), payment.IntentRequest{Amount: 100})
		require.ErrorIs(t, err, payment.ErrDeclined)
		assert.Contains(t, err.Error(), "card_declined")
	})

	t.Run("gateway error", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.CreateIntent(context.Background(), payment.IntentRequest{Amount: 100})
		require.ErrorIs(t, err, payment.ErrGateway)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"pi_1"}`))
		})
		_, err := c.CreateIntent(context.Background(), payment.IntentRequest{Amount: 100})
		require.ErrorIs(t, err, payment.ErrInvalidResponse)
	})

	t.Run("non positive amount", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(http.ResponseWriter, *http.Request) {
			t.Error("gateway must not be called")
		})
		_, err := c.CreateIntent(context.Background(), payment.IntentRequest{})
		require.ErrorIs(t, err, payment.ErrInvalidAmount)
	})
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := payment.NewClient(payment.Config{})
	require.ErrorIs(t, err, payment.ErrNotConfigured)

	_, err = payment.NewClient(payment.Config{IntentURL: "not a url", APIKey: "k"})
	require.ErrorIs(t, err, payment.ErrNotConfigured)
}

func TestCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(4078), payment.Cents(decimal.RequireFromString("40.78")))
	assert.Equal(t, int64(3490), payment.Cents(decimal.RequireFromString("34.9")))
	assert.Equal(t, int64(1), payment.Cents(decimal.RequireFromString("0.005")))
}
