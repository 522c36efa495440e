package order

import (
	"time"

	"example.com/shop-checkout/internal/domain/ledger"
	domorder "example.com/shop-checkout/internal/domain/order"
)

type Service struct {
	ledger *ledger.Ledger
}

func NewService(l *ledger.Ledger) *Service {
	return &Service{ledger: l}
}

func (s *Service) Find(id string) (*domorder.Order, error) {
	o := s.ledger.FindOrder(id)
	if o == nil {
		return nil, domorder.ErrOrderNotFound
	}
	return o, nil
}

func (s *Service) ListByCustomer(customerID string) []*domorder.Order {
	return s.ledger.OrdersByCustomer(customerID)
}

func (s *Service) UpdateStatus(id string, status domorder.Status) (*domorder.Order, error) {
	o, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	if err := o.UpdateStatus(status); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Revenue(start, end time.Time) float64 {
	return s.ledger.RevenueBetween(start, end)
}

// Stats is the aggregate sales summary.
type Stats struct {
	TotalOrders    int
	Revenue        float64
	BestSeller     string
	SalesByProduct map[string]int64
}

// Summary reports revenue over all time; the open lower bound uses the
// zero time, which every real order timestamp is after.
func (s *Service) Summary(now time.Time) Stats {
	best, _ := s.ledger.BestSellingProduct()
	return Stats{
		TotalOrders:    s.ledger.OrderCount(),
		Revenue:        s.ledger.RevenueBetween(time.Time{}, now),
		BestSeller:     best,
		SalesByProduct: s.ledger.SalesByProduct(),
	}
}
