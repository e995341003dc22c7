package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

// PromoKind tells how a promo value is applied.
type PromoKind string

const (
	Percent PromoKind = "percent"
	Fixed   PromoKind = "fixed"
)

// Promo is a discount rule bound to a code. It implements cart.Discount.
type Promo struct {
	Value decimal.Decimal
	Code  string
	Kind  PromoKind
	Label locale.Key
}

var promos = map[string]Promo{
	"WELCOME10": {Code: "WELCOME10", Kind: Percent, Value: decimal.NewFromInt(10), Label: locale.KeyPromoWelcome10},
	"MIMOO20":   {Code: "MIMOO20", Kind: Percent, Value: decimal.NewFromInt(20), Label: locale.KeyPromoMimoo20},
	"FREESHIP":  {Code: "FREESHIP", Kind: Fixed, Value: decimal.RequireFromString("4.90"), Label: locale.KeyPromoFreeship},
	"ANIME5":    {Code: "ANIME5", Kind: Fixed, Value: decimal.NewFromInt(5), Label: locale.KeyPromoAnime5},
}

// LookupPromo finds the promo of code after trimming and uppercasing it.
func LookupPromo(code string) (Promo, bool) {
	p, ok := promos[sanitizer.Code(code)]
	return p, ok
}

// Amount is a percentage of the subtotal, or the fixed value capped at
// subtotal plus shipping.
func (p Promo) Amount(subtotal, shipping decimal.Decimal) decimal.Decimal {
	switch p.Kind {
	case Percent:
		return subtotal.Mul(p.Value).Div(decimal.NewFromInt(100))
	case Fixed:
		return decimal.Min(p.Value, subtotal.Add(shipping))
	default:
		return decimal.Zero
	}
}
