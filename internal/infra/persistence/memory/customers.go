package memory

import (
	"context"
	"strings"
	"sync"

	domcustomer "example.com/shop-checkout/internal/domain/customer"
)

type CustomerStore struct {
	mu      sync.RWMutex
	byID    map[string]*domcustomer.Customer
	byEmail map[string]*domcustomer.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		byID:    make(map[string]*domcustomer.Customer),
		byEmail: make(map[string]*domcustomer.Customer),
	}
}

func (s *CustomerStore) Add(c *domcustomer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[c.ID] = c
	s.byEmail[strings.ToLower(c.Email)] = c
}

func (s *CustomerStore) GetByID(ctx context.Context, id string) (*domcustomer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, domcustomer.ErrCustomerNotFound
	}
	return c, nil
}

func (s *CustomerStore) GetByEmail(ctx context.Context, email string) (*domcustomer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domcustomer.ErrCustomerNotFound
	}
	return c, nil
}
