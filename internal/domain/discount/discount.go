package discount

import (
	"strings"
	"time"
)

// VIPPrefix marks customer ids that qualify for the VIP program.
const VIPPrefix = "VIP"

func IsVIP(customerID string) bool {
	return strings.HasPrefix(customerID, VIPPrefix)
}

// BulkRate is the quantity-tier program.
func BulkRate(totalQty int64) float64 {
	switch {
	case totalQty >= 10:
		return 15
	case totalQty >= 5:
		return 10
	case totalQty >= 3:
		return 5
	default:
		return 0
	}
}

// VIPRate applies amount tiers for VIP customers, with a 10% floor for
// any VIP regardless of amount.
func VIPRate(customerID string, totalAmount float64) float64 {
	if !IsVIP(customerID) {
		return 0
	}
	switch {
	case totalAmount >= 1000000:
		return 20
	case totalAmount >= 500000:
		return 15
	default:
		return 10
	}
}

// Resolver combines the discount programs. It never mutates carts or
// orders; callers apply the resulting rate themselves. The clock is
// injectable because the flash-sale program depends on the hour of day.
type Resolver struct {
	now func() time.Time
}

func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// FlashSaleRate returns 25 during the 12h-14h and 20h-22h windows
// (hour of day, both ends inclusive), 0 otherwise.
func (r *Resolver) FlashSaleRate() float64 {
	hour := r.now().Hour()
	if (hour >= 12 && hour <= 14) || (hour >= 20 && hour <= 22) {
		return 25
	}
	return 0
}

// Optimal picks the single highest applicable rate. Programs never
// stack.
func (r *Resolver) Optimal(customerID string, totalQty int64, totalAmount float64) float64 {
	best := BulkRate(totalQty)
	if vip := VIPRate(customerID, totalAmount); vip > best {
		best = vip
	}
	if flash := r.FlashSaleRate(); flash > best {
		best = flash
	}
	return best
}
