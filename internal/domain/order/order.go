package order

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "cod"
	PaymentBanking PaymentMethod = "banking"
	PaymentCredit  PaymentMethod = "credit"
)

// Item is a by-value copy of a cart line taken at order creation.
type Item struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int64
}

// Order is an immutable snapshot of a cart at creation time. Monetary
// fields never change afterwards, even if the source products are
// repriced.
type Order struct {
	ID              string
	CustomerID      string
	Items           []Item
	Subtotal        float64
	Tax             float64
	ShippingFee     float64
	Total           float64
	Status          Status
	CreatedAt       time.Time
	ShippingAddress string
	PaymentMethod   PaymentMethod
	DeliveryDays    int
}

// UpdateStatus accepts any known status from any current state. The
// original system never validated transitions and that permissiveness
// is kept; IsTerminal is available for callers that want to gate.
func (o *Order) UpdateStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = s
	return nil
}

func (o *Order) TotalItems() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
