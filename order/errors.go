package order

import "errors"

var (
	ErrMissingOrderID = errors.New("order: missing order id")
	ErrNoLastOrder    = errors.New("order: no order stored for visitor")
)
