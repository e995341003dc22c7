package cart

import "github.com/shopspring/decimal"

// Discount computes a reduction for a subtotal and shipping fee.
type Discount interface {
	Amount(subtotal, shipping decimal.Decimal) decimal.Decimal
}

// NoDiscount is the zero discount.
var NoDiscount Discount = noDiscount{}

type noDiscount struct{}

func (noDiscount) Amount(decimal.Decimal, decimal.Decimal) decimal.Decimal { return decimal.Zero }

// Totals is the price breakdown of a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Totals computes the breakdown without side effects.
// Tax is subtotal times taxRate rounded to cents. The discount is clamped
// to [0, subtotal+shipping], so the total never goes below the tax.
func (c *Cart) Totals(taxRate, shipping decimal.Decimal, discount Discount) Totals {
	if discount == nil {
		discount = NoDiscount
	}

	subtotal := c.Subtotal()
	tax := subtotal.Mul(taxRate).Round(2)

	limit := subtotal.Add(shipping)
	off := discount.Amount(subtotal, shipping).Round(2)
	if off.IsNegative() {
		off = decimal.Zero
	}
	if off.GreaterThan(limit) {
		off = limit
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: off,
		Total:    subtotal.Add(shipping).Add(tax).Sub(off),
	}
}
