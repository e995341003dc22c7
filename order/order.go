package order

import (
	"strings"
	"time"

	"github.com/dmitrymomot/storefront/cart"
)

// IDPrefix starts every order id.
const IDPrefix = "MIMOO"

// Customer is the contact and shipping address of an order.
type Customer struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Name is "First Last".
func (c Customer) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Order is an immutable snapshot taken when payment succeeds.
type Order struct {
	CreatedAt     time.Time       `json:"created_at"`
	Totals        cart.Totals     `json:"totals"`
	Customer      Customer        `json:"customer"`
	ID            string          `json:"id"`
	Delivery      Delivery        `json:"delivery"`
	Notes         string          `json:"notes,omitempty"`
	PromoCode     string          `json:"promo_code,omitempty"`
	PaymentRef    string          `json:"payment_ref"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	// CardLast4 is the only part of the card number that is kept.
	CardLast4     string          `json:"card_last4,omitempty"`
	Items         []cart.LineItem `json:"items"`
	Newsletter    bool            `json:"newsletter"`
}

// EstimatedDelivery is the expected delivery date of o.
func (o Order) EstimatedDelivery() time.Time {
	return EstimateDelivery(o.Delivery, o.CreatedAt)
}

// ItemCount is the number of units ordered.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
