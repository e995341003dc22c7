package order

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dmitrymomot/storefront/locale"
)

// ReceiptContentType is the media type of Receipt output.
const ReceiptContentType = "text/plain; charset=utf-8"

// ReceiptFilename is the download name of the receipt of id.
func ReceiptFilename(id string) string {
	return "commande-" + id + ".txt"
}

// Receipt renders o as a plain text summary in the translator's language.
func Receipt(o Order, tr locale.Translator) []byte {
	var b bytes.Buffer
	line := func(format string, args ...any) { fmt.Fprintf(&b, format+"\n", args...) }
	rule := strings.Repeat("=", 40)

	line("%s", tr.Text(locale.KeyReceiptTitle))
	line("%s", rule)
	line("%s%s", tr.Text(locale.KeyOrderNumber), o.ID)
	line("%s: %s", tr.Text(locale.KeyOrderDate), tr.FormatLongDate(o.CreatedAt))
	line("%s: %s", tr.Text(locale.KeyReceiptCustomer), o.Customer.Name())
	line("Email: %s", o.Customer.Email)
	line("")

	line("%s", tr.Text(locale.KeyReceiptItems))
	line("%s", strings.Repeat("-", 20))
	for _, it := range o.Items {
		line("%s - %s: %d - %s", it.Name, tr.Text(locale.KeyReceiptQty), it.Quantity, tr.Money(it.Subtotal()))
	}
	line("")

	line("%s", tr.Text(locale.KeyReceiptTotals))
	line("%s", strings.Repeat("-", 20))
	line("%s: %s", tr.Text(locale.KeySubtotal), tr.Money(o.Totals.Subtotal))
	line("%s: %s", tr.Text(locale.KeyShipping), tr.Money(o.Totals.Shipping))
	line("%s: %s", tr.Text(locale.KeyTax), tr.Money(o.Totals.Tax))
	if o.Totals.Discount.IsPositive() {
		line("%s: -%s", tr.Text(locale.KeyDiscount), tr.Money(o.Totals.Discount))
	}
	line("TOTAL: %s", tr.Money(o.Totals.Total))
	line("%s: %s", tr.Text(locale.KeyPaymentMethod), o.PaymentLabel(tr))
	line("")

	opt := o.Delivery.Option()
	line("%s", tr.Text(locale.KeyReceiptAddress))
	line("%s", strings.Repeat("-", 20))
	line("%s", o.Customer.Name())
	line("%s", o.Customer.Address)
	line("%s %s", o.Customer.PostalCode, o.Customer.City)
	line("%s", CountryName(o.Customer.Country, tr.Lang()))
	line("%s (%s)", tr.Text(opt.Label), tr.Text(opt.Time))
	line("")

	line("%s", tr.Text(locale.KeyReceiptThanks))
	b.WriteString(tr.Text(locale.KeyReceiptSignature))
	return b.Bytes()
}
