// Package payment calls a payment-intent endpoint: a JSON POST carrying the
// amount in cents, the currency and the order data, answered by an opaque
// client secret. The storefront only uses it when a gateway key is
// configured; otherwise checkout runs its simulator.
package payment
