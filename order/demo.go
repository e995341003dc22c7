package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
)

// Demo builds the sample order shown when the requested order cannot be
// found. It carries the requested id.
func Demo(id string, now time.Time) Order {
	return Order{
		ID:        id,
		CreatedAt: now,
		Customer: Customer{
			FirstName:  "Jean",
			LastName:   "Dupont",
			Email:      "jean.dupont@example.com",
			Address:    "123 rue de la Paix",
			City:       "Paris",
			PostalCode: "75001",
			Country:    "FR",
		},
		Items: []cart.LineItem{
			{ProductID: 1, Name: "Porte-clés Totoro Kawaii", Emoji: "🌸", Category: catalog.Keychains, Price: decimal.RequireFromString("12.90"), Quantity: 1},
			{ProductID: 2, Name: "Badge Sailor Moon", Emoji: "🦋", Category: catalog.Badges, Price: decimal.RequireFromString("8.50"), Quantity: 2},
		},
		Totals: cart.Totals{
			Subtotal: decimal.RequireFromString("29.90"),
			Shipping: decimal.RequireFromString("4.90"),
			Tax:      decimal.RequireFromString("5.98"),
			Discount: decimal.Zero,
			Total:    decimal.RequireFromString("40.78"),
		},
		Delivery:      Standard,
		PaymentRef:    fmt.Sprintf("pi_demo_%d", now.UnixMilli()),
		PaymentMethod: Card,
		CardLast4:     "4242",
	}
}
