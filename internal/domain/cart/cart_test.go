package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/shop-checkout/internal/domain/product"
)

func TestAddProduct_NewLine(t *testing.T) {
	p := domproduct.New(1, "AirPods Pro 2", 6990000, 10, "Accessory")
	c := New("CUST001")

	require.True(t, c.AddProduct(p, 2))
	require.Equal(t, int64(2), c.TotalItems())

	item, ok := c.Item(1)
	require.True(t, ok)
	require.Equal(t, int64(2), item.Quantity)
	require.Equal(t, 6990000.0, item.UnitPrice)
}

func TestAddProduct_MergesExistingLine(t *testing.T) {
	p := domproduct.New(1, "iPhone 15 Pro Max", 100, 10, "Phone")
	c := New("CUST001")

	require.True(t, c.AddProduct(p, 3))
	require.True(t, c.AddProduct(p, 4))

	items := c.Items()
	require.Len(t, items, 1, "same product must merge into one line")
	require.Equal(t, int64(7), items[0].Quantity)
}

func TestAddProduct_MergeKeepsCapturedPrice(t *testing.T) {
	p := domproduct.New(1, "iPhone 15 Pro Max", 1000, 10, "Phone")
	c := New("CUST001")

	require.True(t, c.AddProduct(p, 2))

	// A discount set after the first add must not reprice the line,
	// even when more units are merged in.
	p.SetDiscount(50)
	require.True(t, c.AddProduct(p, 1))

	item, _ := c.Item(1)
	require.Equal(t, int64(3), item.Quantity)
	require.Equal(t, 1000.0, item.UnitPrice, "unit price is frozen at first add")
}

func TestAddProduct_CapturesDiscountedPrice(t *testing.T) {
	p := domproduct.New(1, "iPhone 15 Pro Max", 1000, 10, "Phone")
	p.SetDiscount(10)
	c := New("CUST001")

	require.True(t, c.AddProduct(p, 1))
	item, _ := c.Item(1)
	require.InDelta(t, 900.0, item.UnitPrice, 1e-9)
}

func TestAddProduct_MergeBeyondStockFails(t *testing.T) {
	p := domproduct.New(1, "iPad Air", 100, 5, "Tablet")
	c := New("CUST001")

	require.True(t, c.AddProduct(p, 4))
	require.False(t, c.AddProduct(p, 2), "merged quantity exceeds stock")

	item, _ := c.Item(1)
	require.Equal(t, int64(4), item.Quantity, "failed merge leaves the line unchanged")
}

func TestAddProduct_InsufficientStock(t *testing.T) {
	p := domproduct.New(1, "iPad Air", 100, 1, "Tablet")
	c := New("CUST001")

	require.False(t, c.AddProduct(p, 2))
	require.True(t, c.IsEmpty())
}

func TestAddProduct_InactiveProduct(t *testing.T) {
	p := domproduct.New(1, "iPad Air", 100, 10, "Tablet")
	p.SetActive(false)
	c := New("CUST001")

	require.False(t, c.AddProduct(p, 1))
	require.True(t, c.IsEmpty())
}

func TestRemoveProduct(t *testing.T) {
	p1 := domproduct.New(1, "A", 100, 10, "X")
	p2 := domproduct.New(2, "B", 200, 10, "X")
	c := New("CUST001")
	c.AddProduct(p1, 1)
	c.AddProduct(p2, 1)

	c.RemoveProduct(1)
	require.Len(t, c.Items(), 1)

	// Absent line: no-op.
	c.RemoveProduct(99)
	require.Len(t, c.Items(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	p := domproduct.New(1, "A", 100, 5, "X")
	c := New("CUST001")
	c.AddProduct(p, 1)

	require.True(t, c.UpdateQuantity(1, 5))
	item, _ := c.Item(1)
	require.Equal(t, int64(5), item.Quantity)

	require.False(t, c.UpdateQuantity(1, 6), "beyond stock")
	item, _ = c.Item(1)
	require.Equal(t, int64(5), item.Quantity)

	require.False(t, c.UpdateQuantity(42, 1), "unknown line")
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	p := domproduct.New(1, "A", 100, 5, "X")
	c := New("CUST001")
	c.AddProduct(p, 2)

	require.True(t, c.UpdateQuantity(1, 0))
	require.True(t, c.IsEmpty())
}

func TestTotals(t *testing.T) {
	p := domproduct.New(1, "A", 100, 10, "X")
	c := New("C1")
	require.True(t, c.AddProduct(p, 3))

	require.Equal(t, 300.0, c.Subtotal())
	require.InDelta(t, 30.0, c.Tax(), 1e-9)
	require.Equal(t, 50000.0, c.ShippingFee())
	require.InDelta(t, 50330.0, c.Total(), 1e-9)
}

func TestTotal_IsSumOfParts(t *testing.T) {
	p1 := domproduct.New(1, "A", 123456.78, 100, "X")
	p2 := domproduct.New(2, "B", 99.99, 100, "X")
	c := New("C1")
	c.AddProduct(p1, 3)
	c.AddProduct(p2, 7)

	require.Equal(t, c.Subtotal()+c.Tax()+c.ShippingFee(), c.Total())
}

func TestShippingFee_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		fee      float64
	}{
		{"free tier boundary", 500000, 0},
		{"just below free tier", 499999.99, 30000},
		{"reduced tier boundary", 200000, 30000},
		{"just below reduced tier", 199999.99, 50000},
		{"small order", 300, 50000},
		{"well above free tier", 1200000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domproduct.New(1, "A", tt.subtotal, 10, "X")
			c := New("C1")
			require.True(t, c.AddProduct(p, 1))
			require.Equal(t, tt.fee, c.ShippingFee())
		})
	}
}

func TestClear(t *testing.T) {
	p := domproduct.New(1, "A", 100, 10, "X")
	c := New("C1")
	c.AddProduct(p, 3)

	c.Clear()
	require.True(t, c.IsEmpty())
	require.Equal(t, int64(0), c.TotalItems())
	require.Equal(t, 0.0, c.Subtotal())
}
