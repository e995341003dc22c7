package payment

import "errors"

var (
	ErrNotConfigured   = errors.New("payment: gateway not configured")
	ErrInvalidAmount   = errors.New("payment: amount must be positive")
	ErrDeclined        = errors.New("payment: payment declined")
	ErrGateway         = errors.New("payment: gateway unavailable")
	ErrInvalidResponse = errors.New("payment: invalid gateway response")
)
