package customer

import (
	"example.com/shop-checkout/internal/domain/discount"
)

// Customer ids are external strings; ids starting with the VIP prefix
// qualify for the VIP discount program.
type Customer struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

func (c *Customer) IsVIP() bool {
	return discount.IsVIP(c.ID)
}
