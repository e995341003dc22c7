package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/id"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/payment"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

const (
	DefaultDelay         = 2 * time.Second
	DefaultPromoErrorTTL = 3 * time.Second

	// A Processing session older than this is treated as abandoned.
	processingTimeout = time.Minute
)

// DefaultTaxRate is the VAT applied to the subtotal.
var DefaultTaxRate = decimal.RequireFromString("0.20")

// Gateway creates payment intents with a real provider.
type Gateway interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}

// Notifier is told about every placed order.
type Notifier interface {
	OrderPlaced(ctx context.Context, o order.Order, lang locale.Lang) error
}

// Summary is everything the checkout page shows.
type Summary struct {
	Cart           *cart.Cart
	Totals         cart.Totals
	Session        Session
	Promo          Promo
	PromoError     locale.Key
	HasPromo       bool
	HasPromoError  bool
	GatewayEnabled bool
}

// Service runs checkout sessions. Duplicate submits of one visitor join the
// payment already in flight.
type Service struct {
	carts    *cart.Store
	orders   *order.Repository
	gateway  Gateway
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	taxRate  decimal.Decimal
	delay    time.Duration
	promoTTL time.Duration
	inflight singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithDelay sets the simulated payment latency.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithGateway charges through g instead of simulating the payment.
func WithGateway(g Gateway) Option {
	return func(s *Service) { s.gateway = g }
}

// WithNotifier sets the order notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTaxRate overrides DefaultTaxRate.
func WithTaxRate(rate decimal.Decimal) Option {
	return func(s *Service) { s.taxRate = rate }
}

// WithPromoErrorTTL sets how long a promo error stays visible.
func WithPromoErrorTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.promoTTL = d
		}
	}
}

// NewService creates a Service.
func NewService(carts *cart.Store, orders *order.Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		carts:    carts,
		orders:   orders,
		log:      log.With(slog.String("component", "checkout")),
		now:      time.Now,
		taxRate:  DefaultTaxRate,
		delay:    DefaultDelay,
		promoTTL: DefaultPromoErrorTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PromoErrorTTL is how long a promo error stays visible.
func (s *Service) PromoErrorTTL() time.Duration { return s.promoTTL }

// Quote computes the totals of c for a delivery method and promo code.
func (s *Service) Quote(c *cart.Cart, method order.Delivery, promoCode string) cart.Totals {
	discount := cart.NoDiscount
	if p, ok := LookupPromo(promoCode); ok {
		discount = p
	}
	return c.Totals(s.taxRate, method.Fee(), discount)
}

// Session returns the visitor's checkout session.
func (s *Service) Session(ctx context.Context, b *kv.Bucket) (Session, error) {
	sess, err := kv.Load[Session](ctx, b, StorageKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return newSession(), nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.WarnContext(ctx, "discarding unreadable checkout session", slog.String("error", err.Error()))
		return newSession(), nil
	case err != nil:
		return Session{}, err
	}
	if sess.processingStale(s.now(), s.delay+processingTimeout) {
		s.log.WarnContext(ctx, "resetting abandoned payment", slog.Time("started_at", sess.StartedAt))
		sess.State = FormEntry
		sess.StartedAt = time.Time{}
	}
	return sess, nil
}

func (s *Service) save(ctx context.Context, b *kv.Bucket, sess Session) error {
	return kv.Save(ctx, b, StorageKey, sess)
}

// Summary builds the checkout page model without changing state.
func (s *Service) Summary(ctx context.Context, b *kv.Bucket) (Summary, error) {
	c, err := s.carts.Load(ctx, b)
	if err != nil {
		return Summary{}, err
	}
	sess, err := s.Session(ctx, b)
	if err != nil {
		return Summary{}, err
	}
	return s.summary(c, sess), nil
}

func (s *Service) summary(c *cart.Cart, sess Session) Summary {
	sum := Summary{
		Cart:           c,
		Session:        sess,
		Totals:         s.Quote(c, sess.Delivery, sess.PromoCode),
		GatewayEnabled: s.gateway != nil,
	}
	sum.Promo, sum.HasPromo = sess.Promo()
	sum.PromoError, sum.HasPromoError = sess.ActivePromoError(s.now(), s.promoTTL)
	return sum
}

// Begin opens the checkout page. A finished session is replaced by a fresh
// one. ErrCartEmpty means there is nothing to check out.
func (s *Service) Begin(ctx context.Context, b *kv.Bucket) (Summary, error) {
	c, err := s.carts.Load(ctx, b)
	if err != nil {
		return Summary{}, err
	}
	if c.IsEmpty() {
		return Summary{}, ErrCartEmpty
	}

	sess, err := s.Session(ctx, b)
	if err != nil {
		return Summary{}, err
	}
	if sess.State.Terminal() {
		sess = newSession()
	}
	if sess.State == Idle {
		if err := sess.transition(FormEntry); err != nil {
			return Summary{}, err
		}
		if err := s.save(ctx, b, sess); err != nil {
			return Summary{}, err
		}
	}
	return s.summary(c, sess), nil
}

// SetDelivery selects a delivery method. Unknown methods select standard.
func (s *Service) SetDelivery(ctx context.Context, b *kv.Bucket, method string) (Summary, error) {
	return s.update(ctx, b, func(sess *Session) error {
		sess.Delivery = order.ParseDelivery(method)
		return nil
	})
}

// ApplyPromo applies code to the session. Once a code is applied entry is
// locked: applying it again is a no-op, any other code is
// ErrPromoAlreadyApplied. Empty and unknown codes leave a transient error
// on the session.
func (s *Service) ApplyPromo(ctx context.Context, b *kv.Bucket, code string) (Summary, error) {
	var result error
	sum, err := s.update(ctx, b, func(sess *Session) error {
		p, ok := LookupPromo(code)
		switch {
		case sess.PromoLocked():
			if ok && p.Code == sess.PromoCode {
				return nil
			}
			result = ErrPromoAlreadyApplied
		case sanitizer.Code(code) == "":
			sess.setPromoError(locale.KeyPromoEmpty, s.now())
			result = ErrPromoEmpty
		case !ok:
			sess.setPromoError(locale.KeyPromoInvalid, s.now())
			result = ErrPromoInvalid
		default:
			sess.PromoCode = p.Code
			sess.clearPromoError()
			s.log.InfoContext(ctx, "promo code applied", slog.String("code", p.Code))
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, result
}

// DismissPaymentError hides the payment alert.
func (s *Service) DismissPaymentError(ctx context.Context, b *kv.Bucket) (Summary, error) {
	return s.update(ctx, b, func(sess *Session) error {
		sess.PaymentError = ""
		return nil
	})
}

func (s *Service) update(ctx context.Context, b *kv.Bucket, fn func(*Session) error) (Summary, error) {
	c, err := s.carts.Load(ctx, b)
	if err != nil {
		return Summary{}, err
	}
	if c.IsEmpty() {
		return Summary{}, ErrCartEmpty
	}
	sess, err := s.Session(ctx, b)
	if err != nil {
		return Summary{}, err
	}
	if sess.State.Terminal() {
		sess = newSession()
	}
	if err := sess.edit(); err != nil {
		return Summary{}, err
	}
	if err := fn(&sess); err != nil {
		return Summary{}, err
	}
	if err := s.save(ctx, b, sess); err != nil {
		return Summary{}, err
	}
	return s.summary(c, sess), nil
}

// Submit validates form and pays. On success the order is stored as the
// visitor's last order and the cart is cleared. Validation failures return
// validator.ValidationErrors and leave the cart untouched. Submits that
// arrive while a payment of the same visitor is running share its result.
func (s *Service) Submit(ctx context.Context, b *kv.Bucket, form Form, lang locale.Lang) (order.Order, error) {
	v, err, shared := s.inflight.Do(b.Scope(), func() (any, error) {
		return s.submit(ctx, b, form, lang)
	})
	if shared {
		s.log.DebugContext(ctx, "duplicate submit joined payment in flight")
	}
	if err != nil {
		return order.Order{}, err
	}
	return v.(order.Order), nil
}

func (s *Service) submit(ctx context.Context, b *kv.Bucket, form Form, lang locale.Lang) (order.Order, error) {
	c, err := s.carts.Load(ctx, b)
	if err != nil {
		return order.Order{}, err
	}
	if c.IsEmpty() {
		return order.Order{}, ErrCartEmpty
	}

	sess, err := s.Session(ctx, b)
	if err != nil {
		return order.Order{}, err
	}
	if sess.State.Terminal() {
		sess = newSession()
	}
	if err := sess.edit(); err != nil {
		return order.Order{}, err
	}

	sess.Form = form.Sanitize()
	sess.Errors = nil
	sess.PaymentError = ""
	if err := sess.transition(Validating); err != nil {
		return order.Order{}, err
	}

	totals := s.Quote(c, sess.Delivery, sess.PromoCode)
	if err := validate(sess.Form, totals.Total, s.now()); err != nil {
		sess.Errors = validator.ExtractValidationErrors(err)
		if terr := sess.transition(Rejected); terr != nil {
			return order.Order{}, terr
		}
		if serr := s.save(ctx, b, sess); serr != nil {
			return order.Order{}, serr
		}
		return order.Order{}, err
	}

	if err := sess.transition(Processing); err != nil {
		return order.Order{}, err
	}
	sess.StartedAt = s.now()
	if err := s.save(ctx, b, sess); err != nil {
		return order.Order{}, err
	}

	o := order.Order{
		CreatedAt:     s.now(),
		Totals:        totals,
		Customer:      sess.Form.Customer(),
		Delivery:      sess.Delivery,
		Notes:         sess.Form.Notes,
		PromoCode:     sess.PromoCode,
		PaymentMethod: sess.Form.Method(),
		CardLast4:     sess.Form.CardLast4(),
		Items:         c.Clone().Items,
		Newsletter:    sess.Form.Newsletter,
	}

	ref, err := s.pay(ctx, o, fmt.Sprintf("%s-%d", b.Scope(), sess.StartedAt.UnixMilli()))
	if err != nil {
		return order.Order{}, s.abort(ctx, b, sess, err)
	}

	o.ID = id.NewOrderID(order.IDPrefix, o.CreatedAt)
	o.PaymentRef = ref
	if err := s.orders.SaveLast(ctx, b, o); err != nil {
		return order.Order{}, s.abort(ctx, b, sess, err)
	}
	if err := s.carts.Clear(ctx, b); err != nil {
		s.log.ErrorContext(ctx, "failed to clear cart after order", slog.String("order_id", o.ID), slog.String("error", err.Error()))
	}

	if err := sess.transition(Succeeded); err != nil {
		return order.Order{}, err
	}
	sess.OrderID = o.ID
	sess.StartedAt = time.Time{}
	if err := s.save(ctx, b, sess); err != nil {
		s.log.ErrorContext(ctx, "failed to save checkout session", slog.String("order_id", o.ID), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "order placed",
		slog.String("order_id", o.ID),
		slog.String("total", o.Totals.Total.StringFixed(2)),
		slog.Int("items", o.ItemCount()),
	)

	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, o, lang); err != nil {
			s.log.ErrorContext(ctx, "failed to send order confirmation", slog.String("order_id", o.ID), slog.String("error", err.Error()))
		}
	}
	return o, nil
}

// pay returns a payment reference. Without a gateway the payment is
// simulated: it waits for the configured delay and always succeeds.
func (s *Service) pay(ctx context.Context, o order.Order, idempotencyKey string) (string, error) {
	if s.gateway != nil {
		intent, err := s.gateway.CreateIntent(ctx, payment.IntentRequest{
			Amount:         payment.Cents(o.Totals.Total),
			Currency:       "eur",
			OrderData:      o,
			IdempotencyKey: idempotencyKey,
		})
		if err != nil && ctx.Err() != nil {
			return "", err
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrPaymentDeclined, err)
		}
		return intent.ID, nil
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
	}
	return fmt.Sprintf("pi_demo_%d", s.now().UnixMilli()), nil
}

// abort records a failed payment. Declines move to Declined with the
// reason shown to the visitor; anything else returns to FormEntry.
func (s *Service) abort(ctx context.Context, b *kv.Bucket, sess Session, cause error) error {
	to := FormEntry
	if errors.Is(cause, ErrPaymentDeclined) {
		to = Declined
		sess.PaymentError = reason(cause)
	}
	if err := sess.transition(to); err != nil {
		return errors.Join(cause, err)
	}
	sess.StartedAt = time.Time{}

	s.log.WarnContext(ctx, "payment aborted", slog.String("state", string(to)), slog.String("error", cause.Error()))

	if err := s.save(context.WithoutCancel(ctx), b, sess); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// reason is the short cause shown in the payment alert.
func reason(err error) string {
	cause := payment.ErrDeclined
	if errors.Is(err, payment.ErrGateway) || errors.Is(err, payment.ErrInvalidResponse) || errors.Is(err, context.DeadlineExceeded) {
		cause = payment.ErrGateway
	}
	return strings.TrimPrefix(cause.Error(), "payment: ")
}
