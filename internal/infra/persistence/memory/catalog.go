package memory

import (
	"context"
	"strings"
	"sync"

	domproduct "example.com/shop-checkout/internal/domain/product"
)

// CatalogStore is the authoritative product store. It hands out the
// live *Product instances on purpose: cart lines and the checkout flow
// share one object per product, so a stock decrement is visible
// everywhere at once. The mutex guards the maps only; the single-writer
// model covers mutation of the products themselves.
type CatalogStore struct {
	mu     sync.RWMutex
	byID   map[int64]*domproduct.Product
	order  []int64
	nextID int64
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		byID:   make(map[int64]*domproduct.Product),
		nextID: 1,
	}
}

func (s *CatalogStore) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.nextID
	}
	if p.ID >= s.nextID {
		s.nextID = p.ID + 1
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *CatalogStore) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

// List returns products in insertion order.
func (s *CatalogStore) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domproduct.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
