package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/catalog"
	"github.com/dmitrymomot/storefront/checkout"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

var (
	itemA = catalog.Product{ID: 101, Name: "Item A", Category: catalog.Prints, Price: decimal.RequireFromString("10.00")}
	itemB = catalog.Product{ID: 102, Name: "Item B", Category: catalog.Badges, Price: decimal.RequireFromString("5.00")}
)

type fixture struct {
	carts  *cart.Store
	orders *order.Repository
	svc    *checkout.Service
	bucket *kv.Bucket
}

func newFixture(t *testing.T, opts ...checkout.Option) *fixture {
	t.Helper()

	store := kv.NewMemory()
	t.Cleanup(func() { _ = store.Close() })
	b, err := kv.NewBucket(store, "visitor-"+t.Name(), time.Hour)
	require.NoError(t, err)

	log := logger.NewNope()
	f := &fixture{
		carts:  cart.NewStore(log),
		orders: order.NewRepository(log),
		bucket: b,
	}
	f.svc = checkout.NewService(f.carts, f.orders, log, append([]checkout.Option{checkout.WithDelay(0)}, opts...)...)
	return f
}

// fill puts 2×A and 1×B in the cart.
func (f *fixture) fill(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []catalog.Product{itemA, itemA, itemB} {
		_, err := f.carts.Add(ctx, f.bucket, p)
		require.NoError(t, err)
	}
}

func (f *fixture) cart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := f.carts.Load(context.Background(), f.bucket)
	require.NoError(t, err)
	return c
}

func (f *fixture) session(t *testing.T) checkout.Session {
	t.Helper()
	s, err := f.svc.Session(context.Background(), f.bucket)
	require.NoError(t, err)
	return s
}

func validForm() checkout.Form {
	return checkout.Form{
		FirstName:  "Jean",
		LastName:   "Dupont",
		Email:      "jean@example.com",
		Address:    "123 rue de la Paix",
		City:       "Paris",
		PostalCode: "75001",
		Country:    "FR",
		Terms:      true,
		Privacy:    true,

		PaymentMethod: "card",
		CardHolder:    "Jean Dupont",
		CardNumber:    "4242424242424242",
		CardExpiry:    "12/39",
		CardCVC:       "123",
	}
}
