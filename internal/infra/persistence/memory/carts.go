package memory

import (
	"sync"

	domcart "example.com/shop-checkout/internal/domain/cart"
)

// CartStore keeps one cart per customer. The mutex protects the map;
// each cart itself is mutated by at most one logical actor at a time.
type CartStore struct {
	mu         sync.Mutex
	byCustomer map[string]*domcart.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{byCustomer: make(map[string]*domcart.Cart)}
}

func (s *CartStore) GetOrCreate(customerID string) *domcart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byCustomer[customerID]
	if !ok {
		c = domcart.New(customerID)
		s.byCustomer[customerID] = c
	}
	return c
}

func (s *CartStore) Clear(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byCustomer, customerID)
}
