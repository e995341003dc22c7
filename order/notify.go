package order

import (
	"context"
	"embed"
	"io/fs"

	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/pkg/i18n"
	"github.com/dmitrymomot/storefront/pkg/mailer"
)

//go:embed emails
var emails embed.FS

const confirmationTemplate = "order_confirmation.md"

// Emails returns the embedded email templates, rooted at the template dir.
func Emails() fs.FS {
	sub, err := fs.Sub(emails, "emails")
	if err != nil {
		panic(err)
	}
	return sub
}

// Notifier sends the order confirmation email.
type Notifier struct {
	mailer *mailer.Mailer
	i18n   *i18n.I18n
}

// NewNotifier creates a Notifier.
func NewNotifier(m *mailer.Mailer, svc *i18n.I18n) *Notifier {
	return &Notifier{mailer: m, i18n: svc}
}

type emailLine struct {
	Emoji    string
	Name     string
	Total    string
	Quantity int
}

type emailData struct {
	ID            string
	FirstName     string
	Name          string
	Date          string
	Subtotal      string
	Shipping      string
	Tax           string
	Discount      string
	Total         string
	DeliveryLabel string
	Estimate      string
	Address       string
	PostalCode    string
	City          string
	Country       string
	Lines         []emailLine
}

// OrderPlaced emails the confirmation with the text receipt attached.
func (n *Notifier) OrderPlaced(ctx context.Context, o Order, lang locale.Lang) error {
	tr := locale.NewTranslator(n.i18n, lang)

	data := emailData{
		ID:            o.ID,
		FirstName:     o.Customer.FirstName,
		Name:          o.Customer.Name(),
		Date:          tr.FormatLongDate(o.CreatedAt),
		Subtotal:      tr.Money(o.Totals.Subtotal),
		Shipping:      tr.Money(o.Totals.Shipping),
		Tax:           tr.Money(o.Totals.Tax),
		Total:         tr.Money(o.Totals.Total),
		DeliveryLabel: tr.Text(o.Delivery.Option().Label),
		Estimate:      tr.FormatLongDate(o.EstimatedDelivery()),
		Address:       o.Customer.Address,
		PostalCode:    o.Customer.PostalCode,
		City:          o.Customer.City,
		Country:       CountryName(o.Customer.Country, lang),
		Lines:         make([]emailLine, 0, len(o.Items)),
	}
	if o.Totals.Discount.IsPositive() {
		data.Discount = tr.Money(o.Totals.Discount)
	}
	for _, it := range o.Items {
		data.Lines = append(data.Lines, emailLine{
			Emoji:    it.Emoji,
			Name:     it.Name,
			Quantity: it.Quantity,
			Total:    tr.Money(it.Subtotal()),
		})
	}

	return n.mailer.Send(ctx, mailer.Message{
		To:       o.Customer.Email,
		Lang:     string(lang),
		Template: confirmationTemplate,
		Data:     data,
		Tags:     mailer.Tags{"kind": "order_confirmation", "lang": string(lang)},
		Attachments: []mailer.Attachment{{
			Filename:    ReceiptFilename(o.ID),
			ContentType: ReceiptContentType,
			Content:     Receipt(o, tr),
		}},
	})
}
