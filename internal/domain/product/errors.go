package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is inactive")
	ErrOutOfStock      = errors.New("product out of stock")
)
