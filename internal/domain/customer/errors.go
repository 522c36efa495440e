package customer

import "errors"

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUnauthorized      = errors.New("unauthorized")
)
