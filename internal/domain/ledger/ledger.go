package ledger

import (
	"time"

	domorder "example.com/shop-checkout/internal/domain/order"
)

// Ledger accumulates completed orders and per-product sold quantities.
// It is an explicit object owned by the caller, not process-wide state,
// so tests and callers can hold isolated instances. Statistics are only
// ever added to; there is no refund rollback.
type Ledger struct {
	orders    []*domorder.Order
	sales     map[string]int64
	saleNames []string // product names in first-sale order
}

func New() *Ledger {
	return &Ledger{sales: make(map[string]int64)}
}

func (l *Ledger) Record(o *domorder.Order) {
	l.orders = append(l.orders, o)
	for _, item := range o.Items {
		if _, seen := l.sales[item.Name]; !seen {
			l.saleNames = append(l.saleNames, item.Name)
		}
		l.sales[item.Name] += item.Quantity
	}
}

// FindOrder returns nil when no order has the given id.
func (l *Ledger) FindOrder(id string) *domorder.Order {
	for _, o := range l.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// OrdersByCustomer preserves insertion order.
func (l *Ledger) OrdersByCustomer(customerID string) []*domorder.Order {
	var out []*domorder.Order
	for _, o := range l.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// RevenueBetween sums order totals with creation time strictly between
// start and end. Both bounds are exclusive.
func (l *Ledger) RevenueBetween(start, end time.Time) float64 {
	var sum float64
	for _, o := range l.orders {
		if o.CreatedAt.After(start) && o.CreatedAt.Before(end) {
			sum += o.Total
		}
	}
	return sum
}

// BestSellingProduct returns the product name with the highest
// accumulated quantity. Ties go to the product that sold first; the
// second value is false when nothing has been sold yet.
func (l *Ledger) BestSellingProduct() (string, bool) {
	if len(l.saleNames) == 0 {
		return "", false
	}
	best := l.saleNames[0]
	for _, name := range l.saleNames[1:] {
		if l.sales[name] > l.sales[best] {
			best = name
		}
	}
	return best, true
}

func (l *Ledger) OrderCount() int {
	return len(l.orders)
}

// SalesByProduct returns a copy of the sold-quantity map.
func (l *Ledger) SalesByProduct() map[string]int64 {
	out := make(map[string]int64, len(l.sales))
	for name, qty := range l.sales {
		out[name] = qty
	}
	return out
}
