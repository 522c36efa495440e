package auth

import (
	"context"
	"strings"

	domcustomer "example.com/shop-checkout/internal/domain/customer"
)

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type Claims struct {
	CustomerID string
	Email      string
	Name       string
}

type TokenService interface {
	GenerateToken(c *domcustomer.Customer) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	customers domcustomer.Repository
	checker   PasswordComparer
	tokens    TokenService
}

func NewService(
	customers domcustomer.Repository,
	checker PasswordComparer,
	tokens TokenService,
) *Service {
	return &Service{
		customers: customers,
		checker:   checker,
		tokens:    tokens,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token    string
	Customer *domcustomer.Customer
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domcustomer.ErrInvalidCredential
	}

	c, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, domcustomer.ErrUnauthorized
	}

	if err := s.checker.Compare(c.PasswordHash, in.Password); err != nil {
		return nil, domcustomer.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(c)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		Customer: c,
	}, nil
}
