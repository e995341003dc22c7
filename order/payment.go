package order

import (
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/pkg/i18n"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	Card   PaymentMethod = "card"
	PayPal PaymentMethod = "paypal"
)

// PaymentMethods lists the methods in tab order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Card, PayPal}
}

// Label is the translated tab title of m.
func (m PaymentMethod) Label() locale.Key {
	if m == PayPal {
		return locale.KeyPaymentPaypal
	}
	return locale.KeyPaymentCard
}

// PaymentLabel is the translated payment method of o, with the card ending
// when one was recorded.
func (o Order) PaymentLabel(tr locale.Translator) string {
	label := tr.Text(o.PaymentMethod.Label())
	if o.CardLast4 == "" {
		return label
	}
	return label + " " + tr.Text(locale.KeyCardEnding, i18n.M{"last4": o.CardLast4})
}
