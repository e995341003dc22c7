package checkout

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

const (
	maxNameLength  = 80
	maxNotesLength = 500
	postalCodeLen  = 5
	minCVCLength   = 3
	maxCVCLength   = 4
)

// Form is the delivery, payment and consent form posted at checkout.
// Card number, expiry and CVC are never persisted with the session.
type Form struct {
	FirstName     string `form:"firstName" json:"first_name"`
	LastName      string `form:"lastName" json:"last_name"`
	Email         string `form:"email" json:"email"`
	Phone         string `form:"phone" json:"phone,omitempty"`
	Address       string `form:"address" json:"address"`
	City          string `form:"city" json:"city"`
	PostalCode    string `form:"postalCode" json:"postal_code"`
	Country       string `form:"country" json:"country"`
	Notes         string `form:"notes" json:"notes,omitempty"`
	// PaymentMethod is the selected payment tab, "card" or "paypal".
	PaymentMethod string `form:"paymentMethod" json:"payment_method,omitempty"`
	CardHolder    string `form:"cardHolder" json:"card_holder,omitempty"`
	CardNumber    string `form:"cardNumber" json:"-"`
	CardExpiry    string `form:"cardExpiry" json:"-"`
	CardCVC       string `form:"cardCvc" json:"-"`
	Newsletter    bool   `form:"newsletter" json:"newsletter"`
	Terms         bool   `form:"terms" json:"terms"`
	Privacy       bool   `form:"privacy" json:"privacy"`
}

// Sanitize strips markup and normalizes every field.
func (f Form) Sanitize() Form {
	f.FirstName = sanitizer.Truncate(sanitizer.Text(f.FirstName), maxNameLength)
	f.LastName = sanitizer.Truncate(sanitizer.Text(f.LastName), maxNameLength)
	f.Email = sanitizer.Email(f.Email)
	f.Phone = sanitizer.Phone(f.Phone)
	f.Address = sanitizer.Text(f.Address)
	f.City = sanitizer.Text(f.City)
	f.PostalCode = sanitizer.Text(f.PostalCode)
	f.Country = sanitizer.Code(f.Country)
	f.Notes = sanitizer.Multiline(f.Notes, maxNotesLength)
	f.PaymentMethod = strings.ToLower(sanitizer.Text(f.PaymentMethod))
	f.CardHolder = sanitizer.Truncate(sanitizer.Text(f.CardHolder), maxNameLength)
	f.CardNumber = sanitizer.Digits(f.CardNumber, 0)
	f.CardExpiry = strings.ReplaceAll(sanitizer.Text(f.CardExpiry), " ", "")
	f.CardCVC = sanitizer.Digits(f.CardCVC, 0)
	return f
}

// Method is the chosen payment method. An empty or unknown value is
// reported as order.Card, the default tab.
func (f Form) Method() order.PaymentMethod {
	if order.PaymentMethod(f.PaymentMethod) == order.PayPal {
		return order.PayPal
	}
	return order.Card
}

// CardLast4 is the tail of the card number kept on the order.
func (f Form) CardLast4() string {
	if f.Method() != order.Card || len(f.CardNumber) < 4 {
		return ""
	}
	return f.CardNumber[len(f.CardNumber)-4:]
}

// WithoutCard clears the card secrets, keeping the holder name.
func (f Form) WithoutCard() Form {
	f.CardNumber, f.CardExpiry, f.CardCVC = "", "", ""
	return f
}

// Customer converts the form to the order contact record.
func (f Form) Customer() order.Customer {
	return order.Customer{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Phone:      f.Phone,
		Address:    f.Address,
		City:       f.City,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

// Validate checks f against an order total. It returns nil or
// validator.ValidationErrors naming each failing field.
func Validate(f Form, total decimal.Decimal) error {
	return validate(f, total, time.Now())
}

func validate(f Form, total decimal.Decimal, now time.Time) error {
	card := f.PaymentMethod == string(order.Card)
	return validator.Apply(
		validator.RequiredString("firstName", f.FirstName),
		validator.RequiredString("lastName", f.LastName),
		validator.RequiredString("email", f.Email),
		validator.Email("email", f.Email),
		validator.RequiredString("address", f.Address),
		validator.RequiredString("city", f.City),
		validator.RequiredString("postalCode", f.PostalCode),
		validator.Digits("postalCode", f.PostalCode),
		validator.MaxLenString("postalCode", f.PostalCode, postalCodeLen),
		validator.RequiredString("country", f.Country),
		validator.OneOf("country", f.Country, order.CountryCodes()...),
		validator.RequiredString("paymentMethod", f.PaymentMethod),
		validator.OneOf("paymentMethod", order.PaymentMethod(f.PaymentMethod), order.PaymentMethods()...),
		validator.When(card, validator.RequiredString("cardHolder", f.CardHolder)),
		validator.When(card, validator.RequiredString("cardNumber", f.CardNumber)),
		validator.When(card, validator.CardNumber("cardNumber", f.CardNumber)),
		validator.When(card, validator.RequiredString("cardExpiry", f.CardExpiry)),
		validator.When(card, validator.CardExpiry("cardExpiry", f.CardExpiry, now)),
		validator.When(card, validator.RequiredString("cardCvc", f.CardCVC)),
		validator.When(card, validator.MinLenString("cardCvc", f.CardCVC, minCVCLength)),
		validator.When(card, validator.MaxLenString("cardCvc", f.CardCVC, maxCVCLength)),
		validator.Accepted("terms", f.Terms),
		validator.Accepted("privacy", f.Privacy),
		validator.Positive("total", total.IsPositive()),
	)
}
