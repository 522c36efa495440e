package product

type Product struct {
	ID       int64
	Name     string
	Price    float64
	Stock    int64
	Category string
	Discount float64 // percent, 0..100
	IsActive bool
}

func New(id int64, name string, price float64, stock int64, category string) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
		IsActive: true,
	}
}

func (p *Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.Discount/100)
}

// IsAvailable reports whether qty units can be sold right now.
// qty must be positive; the result for qty <= 0 is undefined.
func (p *Product) IsAvailable(qty int64) bool {
	return p.IsActive && p.Stock >= qty
}

// ReduceStock is the only path that lowers stock. It decrements iff the
// full quantity is available, so stock can never go negative.
func (p *Product) ReduceStock(qty int64) bool {
	if !p.IsAvailable(qty) {
		return false
	}
	p.Stock -= qty
	return true
}

func (p *Product) Restock(qty int64) {
	if qty > 0 {
		p.Stock += qty
	}
}

func (p *Product) SetDiscount(pct float64) {
	p.Discount = pct
}

func (p *Product) SetActive(active bool) {
	p.IsActive = active
}

type ListFilter struct {
	Category   string
	Search     string
	OnlyActive bool
}
