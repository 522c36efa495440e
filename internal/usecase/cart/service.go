package cart

import (
	"context"
	"errors"

	domcart "example.com/shop-checkout/internal/domain/cart"
	"example.com/shop-checkout/internal/domain/discount"
	domproduct "example.com/shop-checkout/internal/domain/product"
)

type CartStore interface {
	GetOrCreate(customerID string) *domcart.Cart
	Clear(customerID string)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domproduct.Product, error)
}

type Service struct {
	carts     CartStore
	products  ProductRepository
	discounts *discount.Resolver
}

func NewService(carts CartStore, products ProductRepository, discounts *discount.Resolver) *Service {
	return &Service{
		carts:     carts,
		products:  products,
		discounts: discounts,
	}
}

func (s *Service) AddToCart(ctx context.Context, customerID string, productID int64, quantity int64) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !p.IsActive {
		return domproduct.ErrProductInactive
	}

	c := s.carts.GetOrCreate(customerID)
	if !c.AddProduct(p, quantity) {
		return domproduct.ErrOutOfStock
	}
	return nil
}

func (s *Service) RemoveFromCart(customerID string, productID int64) {
	s.carts.GetOrCreate(customerID).RemoveProduct(productID)
}

func (s *Service) UpdateQuantity(customerID string, productID int64, quantity int64) error {
	c := s.carts.GetOrCreate(customerID)
	if _, ok := c.Item(productID); !ok && quantity > 0 {
		return domcart.ErrItemNotFound
	}
	if !c.UpdateQuantity(productID, quantity) {
		return domproduct.ErrOutOfStock
	}
	return nil
}

func (s *Service) GetCart(customerID string) *domcart.Cart {
	return s.carts.GetOrCreate(customerID)
}

func (s *Service) ClearCart(customerID string) {
	s.carts.Clear(customerID)
}

// Quote is the priced view of a cart: the cart's own totals plus the
// optimal discount. The discount amount is derived from the subtotal
// only and subtracted from the already-computed total; tax and shipping
// are never rediscounted.
type Quote struct {
	Subtotal       float64
	Tax            float64
	ShippingFee    float64
	Total          float64
	DiscountRate   float64
	DiscountAmount float64
	Payable        float64
}

func (s *Service) Quote(customerID string) Quote {
	c := s.carts.GetOrCreate(customerID)

	q := Quote{
		Subtotal:    c.Subtotal(),
		Tax:         c.Tax(),
		ShippingFee: c.ShippingFee(),
		Total:       c.Total(),
	}
	q.DiscountRate = s.discounts.Optimal(customerID, c.TotalItems(), q.Subtotal)
	q.DiscountAmount = q.Subtotal * q.DiscountRate / 100
	q.Payable = q.Total - q.DiscountAmount
	return q
}
