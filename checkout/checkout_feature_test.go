package checkout_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/checkout"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/id"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

type checkoutTestContext struct {
	store   *kv.Memory
	bucket  *kv.Bucket
	carts   *cart.Store
	orders  *order.Repository
	svc     *checkout.Service
	taxRate decimal.Decimal
	summary checkout.Summary
	placed  []order.Order
	err     error
}

func (c *checkoutTestContext) reset() error {
	if c.store != nil {
		_ = c.store.Close()
	}
	c.store = kv.NewMemory()
	b, err := kv.NewBucket(c.store, id.NewULID(), time.Hour)
	if err != nil {
		return err
	}
	log := logger.NewNope()
	c.bucket = b
	c.carts = cart.NewStore(log)
	c.orders = order.NewRepository(log)
	c.taxRate = checkout.DefaultTaxRate
	c.svc = nil
	c.summary = checkout.Summary{}
	c.placed = nil
	c.err = nil
	return nil
}

func (c *checkoutTestContext) service() *checkout.Service {
	if c.svc == nil {
		c.svc = checkout.NewService(c.carts, c.orders, logger.NewNope(),
			checkout.WithDelay(0), checkout.WithTaxRate(c.taxRate))
	}
	return c.svc
}

func (c *checkoutTestContext) aCartWith(qtyA int, nameA, priceA string, qtyB int, nameB, priceB string) error {
	ctx := context.Background()
	add := func(pid, qty int, name, price string) error {
		p := catalog.Product{ID: pid, Name: name, Category: catalog.Prints, Price: decimal.RequireFromString(price)}
		for range qty {
			if _, err := c.carts.Add(ctx, c.bucket, p); err != nil {
				return err
			}
		}
		return nil
	}
	if err := add(1, qtyA, nameA, priceA); err != nil {
		return err
	}
	return add(2, qtyB, nameB, priceB)
}

func (c *checkoutTestContext) theTaxRateIs(percent int) error {
	c.taxRate = decimal.NewFromInt(int64(percent)).Div(decimal.NewFromInt(100))
	return nil
}

func (c *checkoutTestContext) iOpenTheCheckout() error {
	c.summary, c.err = c.service().Begin(context.Background(), c.bucket)
	return c.err
}

func (c *checkoutTestContext) iApplyThePromoCode(code string) error {
	sum, err := c.service().ApplyPromo(context.Background(), c.bucket, code)
	if err != nil && !errors.Is(err, checkout.ErrPromoInvalid) && !errors.Is(err, checkout.ErrPromoEmpty) {
		return err
	}
	c.summary, c.err = sum, err
	return nil
}

func validFeatureForm() checkout.Form {
	return checkout.Form{
		FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com",
		Address: "123 rue de la Paix", City: "Paris", PostalCode: "75001", Country: "FR",
		Terms: true, Privacy: true,
		PaymentMethod: "card", CardHolder: "Jean Dupont",
		CardNumber: "4242424242424242", CardExpiry: "12/39", CardCVC: "123",
	}
}

func (c *checkoutTestContext) submit(f checkout.Form) {
	o, err := c.service().Submit(context.Background(), c.bucket, f, locale.French)
	c.err = err
	if err == nil {
		c.placed = append(c.placed, o)
	}
}

func (c *checkoutTestContext) iSubmitTheFormWithout(field string) error {
	f := validFeatureForm()
	switch field {
	case "email":
		f.Email = ""
	case "firstName":
		f.FirstName = ""
	case "address":
		f.Address = ""
	case "cardNumber":
		f.CardNumber = ""
	default:
		return fmt.Errorf("unsupported field %q", field)
	}
	c.submit(f)
	return nil
}

func (c *checkoutTestContext) iSubmitAValidForm() error {
	c.submit(validFeatureForm())
	return nil
}

func equalAmount(name string, got decimal.Decimal, want string) error {
	if !got.Equal(decimal.RequireFromString(want)) {
		return fmt.Errorf("expected %s %s, got %s", name, want, got.StringFixed(2))
	}
	return nil
}

func (c *checkoutTestContext) theSubtotalIs(v string) error {
	return equalAmount("subtotal", c.summary.Totals.Subtotal, v)
}

func (c *checkoutTestContext) theShippingIs(v string) error {
	return equalAmount("shipping", c.summary.Totals.Shipping, v)
}

func (c *checkoutTestContext) theTaxIs(v string) error {
	return equalAmount("tax", c.summary.Totals.Tax, v)
}

func (c *checkoutTestContext) theDiscountIs(v string) error {
	return equalAmount("discount", c.summary.Totals.Discount, v)
}

func (c *checkoutTestContext) theTotalIs(v string) error {
	return equalAmount("total", c.summary.Totals.Total, v)
}

func (c *checkoutTestContext) thePromoCodeEntryIsLocked() error {
	if !c.summary.Session.PromoLocked() {
		return errors.New("expected promo entry to be locked")
	}
	return nil
}

func (c *checkoutTestContext) thePromoErrorIsShown(key string) error {
	if !c.summary.HasPromoError {
		return errors.New("expected a promo error")
	}
	if got := c.summary.PromoError.String(); got != key {
		return fmt.Errorf("expected promo error %q, got %q", key, got)
	}
	return nil
}

func (c *checkoutTestContext) theSubmissionIsRejectedFor(field string) error {
	errs := validator.ExtractValidationErrors(c.err)
	if errs == nil {
		return fmt.Errorf("expected validation errors, got %v", c.err)
	}
	if !errs.Has(field) {
		return fmt.Errorf("expected an error for %q, got %s", field, errs.Error())
	}
	sess, err := c.service().Session(context.Background(), c.bucket)
	if err != nil {
		return err
	}
	if sess.State != checkout.Rejected {
		return fmt.Errorf("expected state %s, got %s", checkout.Rejected, sess.State)
	}
	return nil
}

func (c *checkoutTestContext) theCartStillHoldsItems(n int) error {
	ct, err := c.carts.Load(context.Background(), c.bucket)
	if err != nil {
		return err
	}
	if ct.Count() != n {
		return fmt.Errorf("expected %d items, got %d", n, ct.Count())
	}
	return nil
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	return c.theCartStillHoldsItems(0)
}

func (c *checkoutTestContext) noOrderWasCreated() error {
	if len(c.placed) != 0 {
		return fmt.Errorf("expected no order, got %d", len(c.placed))
	}
	if _, err := c.orders.Last(context.Background(), c.bucket); !errors.Is(err, order.ErrNoLastOrder) {
		return fmt.Errorf("expected no stored order, got %v", err)
	}
	return nil
}

func (c *checkoutTestContext) thePaymentSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %w", c.err)
	}
	return nil
}

func (c *checkoutTestContext) exactlyOneOrderWasCreated() error {
	if len(c.placed) != 1 {
		return fmt.Errorf("expected one order, got %d", len(c.placed))
	}
	last, err := c.orders.Last(context.Background(), c.bucket)
	if err != nil {
		return err
	}
	if last.ID != c.placed[0].ID {
		return fmt.Errorf("stored order %s does not match placed order %s", last.ID, c.placed[0].ID)
	}
	return nil
}

func (c *checkoutTestContext) theOrderTotalIs(v string) error {
	if len(c.placed) == 0 {
		return errors.New("no order placed")
	}
	return equalAmount("order total", c.placed[0].Totals.Total, v)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc.store != nil {
			_ = tc.store.Close()
			tc.store = nil
		}
		return ctx, nil
	})

	ctx.Step(`^a cart with (\d+) of "([^"]*)" at (\d+\.\d{2}) and (\d+) of "([^"]*)" at (\d+\.\d{2})$`, tc.aCartWith)
	ctx.Step(`^the tax rate is (\d+)%$`, tc.theTaxRateIs)

	ctx.Step(`^I open the checkout$`, tc.iOpenTheCheckout)
	ctx.Step(`^I apply the promo code "([^"]*)"$`, tc.iApplyThePromoCode)
	ctx.Step(`^I submit the form without "([^"]*)"$`, tc.iSubmitTheFormWithout)
	ctx.Step(`^I submit a valid form$`, tc.iSubmitAValidForm)

	ctx.Step(`^the subtotal is (\d+\.\d{2})$`, tc.theSubtotalIs)
	ctx.Step(`^the shipping is (\d+\.\d{2})$`, tc.theShippingIs)
	ctx.Step(`^the tax is (\d+\.\d{2})$`, tc.theTaxIs)
	ctx.Step(`^the discount is (\d+\.\d{2})$`, tc.theDiscountIs)
	ctx.Step(`^the total is (\d+\.\d{2})$`, tc.theTotalIs)
	ctx.Step(`^the promo code entry is locked$`, tc.thePromoCodeEntryIsLocked)
	ctx.Step(`^the promo error "([^"]*)" is shown$`, tc.thePromoErrorIsShown)
	ctx.Step(`^the submission is rejected for "([^"]*)"$`, tc.theSubmissionIsRejectedFor)
	ctx.Step(`^the cart still holds (\d+) items$`, tc.theCartStillHoldsItems)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^no order was created$`, tc.noOrderWasCreated)
	ctx.Step(`^the payment succeeds$`, tc.thePaymentSucceeds)
	ctx.Step(`^exactly one order was created$`, tc.exactlyOneOrderWasCreated)
	ctx.Step(`^the order total is (\d+\.\d{2})$`, tc.theOrderTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
