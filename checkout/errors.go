package checkout

import "errors"

var (
	ErrCartEmpty           = errors.New("checkout: cart is empty")
	ErrPromoEmpty          = errors.New("checkout: promo code is empty")
	ErrPromoInvalid        = errors.New("checkout: promo code is invalid")
	ErrPromoAlreadyApplied = errors.New("checkout: another promo code is already applied")
	ErrPaymentInProgress   = errors.New("checkout: payment already in progress")
	ErrPaymentDeclined     = errors.New("checkout: payment declined")
	ErrInvalidTransition   = errors.New("checkout: invalid state transition")
)
