package cart

import "errors"

var ErrItemNotFound = errors.New("cart: item not in cart")
