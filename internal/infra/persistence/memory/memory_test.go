package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domcustomer "example.com/shop-checkout/internal/domain/customer"
	domproduct "example.com/shop-checkout/internal/domain/product"
)

func TestCatalogStore_CreateAssignsIDs(t *testing.T) {
	s := NewCatalogStore()
	ctx := context.Background()

	p1, err := s.Create(ctx, &domproduct.Product{Name: "A", Price: 100, Stock: 1, IsActive: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), p1.ID)

	p2, err := s.Create(ctx, &domproduct.Product{Name: "B", Price: 100, Stock: 1, IsActive: true})
	require.NoError(t, err)
	require.Equal(t, int64(2), p2.ID)

	// Explicit ids are kept and advance the sequence.
	p9, err := s.Create(ctx, &domproduct.Product{ID: 9, Name: "C", Price: 100, Stock: 1, IsActive: true})
	require.NoError(t, err)
	require.Equal(t, int64(9), p9.ID)

	p10, err := s.Create(ctx, &domproduct.Product{Name: "D", Price: 100, Stock: 1, IsActive: true})
	require.NoError(t, err)
	require.Equal(t, int64(10), p10.ID)
}

func TestCatalogStore_GetByID_SharesInstance(t *testing.T) {
	s := NewCatalogStore()
	ctx := context.Background()
	p, _ := s.Create(ctx, domproduct.New(1, "AirPods", 100, 10, "Accessory"))

	got, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Same(t, p, got, "callers share one live instance per product")

	_, err = s.GetByID(ctx, 42)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestCatalogStore_List(t *testing.T) {
	s := NewCatalogStore()
	ctx := context.Background()
	s.Create(ctx, domproduct.New(1, "iPhone 15", 100, 1, "Phone"))
	s.Create(ctx, domproduct.New(2, "MacBook Air", 100, 1, "Laptop"))
	inactive := domproduct.New(3, "iPhone 14", 100, 1, "Phone")
	inactive.SetActive(false)
	s.Create(ctx, inactive)

	all, err := s.List(ctx, domproduct.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "iPhone 15", all[0].Name, "insertion order preserved")

	phones, _ := s.List(ctx, domproduct.ListFilter{Category: "Phone", OnlyActive: true})
	require.Len(t, phones, 1)

	found, _ := s.List(ctx, domproduct.ListFilter{Search: "macbook"})
	require.Len(t, found, 1)
	require.Equal(t, "MacBook Air", found[0].Name)
}

func TestCartStore(t *testing.T) {
	s := NewCartStore()

	c := s.GetOrCreate("CUST001")
	require.NotNil(t, c)
	require.Same(t, c, s.GetOrCreate("CUST001"))
	require.NotSame(t, c, s.GetOrCreate("CUST002"))

	s.Clear("CUST001")
	require.NotSame(t, c, s.GetOrCreate("CUST001"))
}

func TestCustomerStore(t *testing.T) {
	s := NewCustomerStore()
	s.Add(&domcustomer.Customer{ID: "VIP001", Email: "VIP@Example.com"})

	ctx := context.Background()
	c, err := s.GetByID(ctx, "VIP001")
	require.NoError(t, err)
	require.True(t, c.IsVIP())

	// Email lookup is case-insensitive.
	c, err = s.GetByEmail(ctx, "vip@example.com")
	require.NoError(t, err)
	require.Equal(t, "VIP001", c.ID)

	_, err = s.GetByID(ctx, "ghost")
	require.ErrorIs(t, err, domcustomer.ErrCustomerNotFound)
}
