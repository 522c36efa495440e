package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/shop-checkout/internal/domain/ledger"
	domorder "example.com/shop-checkout/internal/domain/order"
)

func seededLedger() *ledger.Ledger {
	l := ledger.New()
	l.Record(&domorder.Order{
		ID:         "ORD1",
		CustomerID: "C1",
		Total:      100,
		Status:     domorder.StatusPending,
		CreatedAt:  time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
		Items:      []domorder.Item{{ProductID: 1, Name: "AirPods", Quantity: 2}},
	})
	l.Record(&domorder.Order{
		ID:         "ORD2",
		CustomerID: "VIP001",
		Total:      250,
		Status:     domorder.StatusPending,
		CreatedAt:  time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
		Items:      []domorder.Item{{ProductID: 2, Name: "iPhone", Quantity: 5}},
	})
	return l
}

func TestFind(t *testing.T) {
	svc := NewService(seededLedger())

	o, err := svc.Find("ORD1")
	require.NoError(t, err)
	require.Equal(t, "C1", o.CustomerID)

	_, err = svc.Find("ORD9")
	require.ErrorIs(t, err, domorder.ErrOrderNotFound)
}

func TestListByCustomer(t *testing.T) {
	svc := NewService(seededLedger())
	require.Len(t, svc.ListByCustomer("VIP001"), 1)
	require.Empty(t, svc.ListByCustomer("C9"))
}

func TestUpdateStatus(t *testing.T) {
	svc := NewService(seededLedger())

	o, err := svc.UpdateStatus("ORD1", domorder.StatusShipped)
	require.NoError(t, err)
	require.Equal(t, domorder.StatusShipped, o.Status)

	_, err = svc.UpdateStatus("ORD1", domorder.Status("NOPE"))
	require.ErrorIs(t, err, domorder.ErrInvalidStatus)

	_, err = svc.UpdateStatus("ORD9", domorder.StatusCancelled)
	require.ErrorIs(t, err, domorder.ErrOrderNotFound)
}

func TestRevenue(t *testing.T) {
	svc := NewService(seededLedger())
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 100.0, svc.Revenue(start, end))
}

func TestSummary(t *testing.T) {
	svc := NewService(seededLedger())
	stats := svc.Summary(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	require.Equal(t, 2, stats.TotalOrders)
	require.Equal(t, 350.0, stats.Revenue)
	require.Equal(t, "iPhone", stats.BestSeller)
	require.Equal(t, int64(2), stats.SalesByProduct["AirPods"])
	require.Equal(t, int64(5), stats.SalesByProduct["iPhone"])
}
