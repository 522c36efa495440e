package checkout

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	domcart "example.com/shop-checkout/internal/domain/cart"
	"example.com/shop-checkout/internal/domain/ledger"
	domorder "example.com/shop-checkout/internal/domain/order"
)

// OrderArchive persists a copy of created orders (MySQL when
// configured). The ledger stays the authoritative record; an archive
// failure is logged, not propagated, because the order already exists.
type OrderArchive interface {
	Save(ctx context.Context, o *domorder.Order) error
}

type Service struct {
	ledger  *ledger.Ledger
	archive OrderArchive

	// Injectable for deterministic tests.
	now   func() time.Time
	intn  func(n int) int
	newID func() string
}

func NewService(l *ledger.Ledger, archive OrderArchive) *Service {
	return &Service{
		ledger:  l,
		archive: archive,
		now:     time.Now,
		intn:    rand.Intn,
		newID:   newOrderID,
	}
}

func newOrderID() string {
	return "ORD" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateOrder turns a cart into an immutable order: validate every line
// against current availability, snapshot the cart's totals, decrement
// stock, record the order in the ledger. Validation runs before any
// mutation, so a failed creation leaves stock and ledger untouched.
func (s *Service) CreateOrder(ctx context.Context, customerID string, c *domcart.Cart, address string, payment domorder.PaymentMethod) (*domorder.Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, domorder.ErrEmptyCart
	}

	items := c.Items()
	for _, item := range items {
		// Stock may have dropped since the line was added.
		if !item.Product.IsAvailable(item.Quantity) {
			return nil, fmt.Errorf("%w: %s", domorder.ErrInsufficientStock, item.Product.Name)
		}
	}

	o := &domorder.Order{
		ID:              s.newID(),
		CustomerID:      customerID,
		Items:           make([]domorder.Item, 0, len(items)),
		Subtotal:        c.Subtotal(),
		Tax:             c.Tax(),
		ShippingFee:     c.ShippingFee(),
		Total:           c.Total(),
		Status:          domorder.StatusPending,
		CreatedAt:       s.now(),
		ShippingAddress: address,
		PaymentMethod:   payment,
	}
	o.DeliveryDays = s.estimateDeliveryDays(payment)

	for _, item := range items {
		o.Items = append(o.Items, domorder.Item{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	for _, item := range items {
		if !item.Product.ReduceStock(item.Quantity) {
			// Cannot happen under the single-writer model: every line
			// was validated above and nothing else mutates products
			// between the check and this decrement.
			return nil, fmt.Errorf("stock for %q changed during order creation", item.Product.Name)
		}
	}

	s.ledger.Record(o)

	if s.archive != nil {
		if err := s.archive.Save(ctx, o); err != nil {
			log.Printf("order %s: archive failed: %v", o.ID, err)
		}
	}
	return o, nil
}

// Delivery estimate buckets by payment method; the offset inside a
// bucket comes from the injected rng.
func (s *Service) estimateDeliveryDays(payment domorder.PaymentMethod) int {
	switch domorder.PaymentMethod(strings.ToLower(string(payment))) {
	case domorder.PaymentCOD:
		return 3 + s.intn(3) // 3..5
	case domorder.PaymentBanking:
		return 2 + s.intn(2) // 2..3
	case domorder.PaymentCredit:
		return 1 + s.intn(2) // 1..2
	default:
		return 5
	}
}
