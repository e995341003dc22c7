package checkout

import (
	"time"

	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/order"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// StorageKey is the visitor bucket key holding the checkout session.
const StorageKey = "checkout"

// Session is the persisted state of one visitor's checkout.
type Session struct {
	StartedAt    time.Time                  `json:"started_at,omitzero"`
	PromoErrorAt time.Time                  `json:"promo_error_at,omitzero"`
	State        State                      `json:"state"`
	Delivery     order.Delivery             `json:"delivery"`
	PromoCode    string                     `json:"promo_code,omitempty"`
	PromoError   string                     `json:"promo_error,omitempty"`
	PaymentError string                     `json:"payment_error,omitempty"`
	OrderID      string                     `json:"order_id,omitempty"`
	Errors       validator.ValidationErrors `json:"errors,omitempty"`
	Form         Form                       `json:"form"`
}

func newSession() Session {
	return Session{State: Idle, Delivery: order.Standard}
}

// Promo returns the applied promo, if any.
func (s Session) Promo() (Promo, bool) {
	if s.PromoCode == "" {
		return Promo{}, false
	}
	return LookupPromo(s.PromoCode)
}

// PromoLocked reports whether code entry is disabled.
func (s Session) PromoLocked() bool { return s.PromoCode != "" }

// ActivePromoError returns the promo error message key while it is
// younger than ttl.
func (s Session) ActivePromoError(now time.Time, ttl time.Duration) (locale.Key, bool) {
	if s.PromoError == "" || now.Sub(s.PromoErrorAt) >= ttl {
		return 0, false
	}
	return locale.KeyByName(s.PromoError)
}

// processingStale reports whether a Processing session outlived any
// request that could still be working on it.
func (s Session) processingStale(now time.Time, after time.Duration) bool {
	return s.State == Processing && now.Sub(s.StartedAt) > after
}

func (s *Session) setPromoError(key locale.Key, at time.Time) {
	s.PromoError = key.String()
	s.PromoErrorAt = at
}

func (s *Session) clearPromoError() {
	s.PromoError = ""
	s.PromoErrorAt = time.Time{}
}

// edit moves an editable session back to FormEntry.
func (s *Session) edit() error {
	switch s.State {
	case FormEntry:
		return nil
	case Idle, Rejected, Declined:
		return s.transition(FormEntry)
	case Processing:
		return ErrPaymentInProgress
	default:
		return ErrInvalidTransition
	}
}
