package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("catalog: product not found")
	ErrInvalidProduct  = errors.New("catalog: invalid product")
	ErrDuplicateID     = errors.New("catalog: duplicate product id")
	ErrInvalidSeed     = errors.New("catalog: invalid seed data")
)
