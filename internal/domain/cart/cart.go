package cart

import (
	domproduct "example.com/shop-checkout/internal/domain/product"
)

// Item is one cart line. UnitPrice is captured from the product's
// discounted price when the line is first created and is never
// re-captured, so later discount changes do not reprice lines that are
// already in the cart.
type Item struct {
	Product   *domproduct.Product
	Quantity  int64
	UnitPrice float64
}

func (i Item) TotalPrice() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

const taxRate = 0.10

// Shipping fee tiers on the cart subtotal.
const (
	freeShippingThreshold    = 500000.0
	reducedShippingThreshold = 200000.0
	reducedShippingFee       = 30000.0
	baseShippingFee          = 50000.0
)

// Cart holds at most one line per product id; adding an existing product
// merges quantities instead of appending a second line.
type Cart struct {
	CustomerID string
	items      []*Item
}

func New(customerID string) *Cart {
	return &Cart{CustomerID: customerID}
}

// AddProduct inserts a new line or merges into an existing one. The
// availability check covers the merged quantity, and a failed add leaves
// the cart untouched. Insufficient stock is an expected outcome, hence
// the bool instead of an error.
func (c *Cart) AddProduct(p *domproduct.Product, qty int64) bool {
	if !p.IsAvailable(qty) {
		return false
	}
	for _, item := range c.items {
		if item.Product.ID == p.ID {
			merged := item.Quantity + qty
			if !p.IsAvailable(merged) {
				return false
			}
			item.Quantity = merged
			return true
		}
	}
	c.items = append(c.items, &Item{
		Product:   p,
		Quantity:  qty,
		UnitPrice: p.DiscountedPrice(),
	})
	return true
}

// RemoveProduct deletes the line for productID. Removing an absent line
// is a no-op, not a failure.
func (c *Cart) RemoveProduct(productID int64) {
	for i, item := range c.items {
		if item.Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of an existing line. newQty <= 0
// removes the line. The unit price is left as captured at first add.
func (c *Cart) UpdateQuantity(productID int64, newQty int64) bool {
	if newQty <= 0 {
		c.RemoveProduct(productID)
		return true
	}
	for _, item := range c.items {
		if item.Product.ID == productID {
			if !item.Product.IsAvailable(newQty) {
				return false
			}
			item.Quantity = newQty
			return true
		}
	}
	return false
}

func (c *Cart) Item(productID int64) (Item, bool) {
	for _, item := range c.items {
		if item.Product.ID == productID {
			return *item, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, *item)
	}
	return out
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.TotalPrice()
	}
	return sum
}

func (c *Cart) Tax() float64 {
	return c.Subtotal() * taxRate
}

func (c *Cart) ShippingFee() float64 {
	subtotal := c.Subtotal()
	switch {
	case subtotal >= freeShippingThreshold:
		return 0
	case subtotal >= reducedShippingThreshold:
		return reducedShippingFee
	default:
		return baseShippingFee
	}
}

func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax() + c.ShippingFee()
}

func (c *Cart) TotalItems() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
