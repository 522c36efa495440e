package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domcustomer "example.com/shop-checkout/internal/domain/customer"
)

type mockCustomerRepository struct {
	byEmail map[string]*domcustomer.Customer
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*domcustomer.Customer, error) {
	for _, c := range m.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domcustomer.ErrCustomerNotFound
}

func (m *mockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domcustomer.Customer, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return nil, domcustomer.ErrCustomerNotFound
	}
	return c, nil
}

type mockComparer struct{ err error }

func (m *mockComparer) Compare(hash string, password string) error { return m.err }

type mockTokenService struct{ token string }

func (m *mockTokenService) GenerateToken(c *domcustomer.Customer) (string, error) {
	return m.token, nil
}

func (m *mockTokenService) ParseToken(token string) (*Claims, error) {
	return &Claims{}, nil
}

func TestLogin_Succeeds(t *testing.T) {
	repo := &mockCustomerRepository{byEmail: map[string]*domcustomer.Customer{
		"vip@example.com": {ID: "VIP001", Email: "vip@example.com", PasswordHash: "$hash"},
	}}
	svc := NewService(repo, &mockComparer{}, &mockTokenService{token: "tok"})

	res, err := svc.Login(context.Background(), LoginInput{Email: " VIP@example.com ", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "tok", res.Token)
	require.Equal(t, "VIP001", res.Customer.ID)
	require.True(t, res.Customer.IsVIP())
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := NewService(&mockCustomerRepository{}, &mockComparer{}, &mockTokenService{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "", Password: "x"})
	require.ErrorIs(t, err, domcustomer.ErrInvalidCredential)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: ""})
	require.ErrorIs(t, err, domcustomer.ErrInvalidCredential)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(&mockCustomerRepository{byEmail: map[string]*domcustomer.Customer{}}, &mockComparer{}, &mockTokenService{})
	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "x"})
	require.ErrorIs(t, err, domcustomer.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockCustomerRepository{byEmail: map[string]*domcustomer.Customer{
		"c@example.com": {ID: "CUST001", Email: "c@example.com", PasswordHash: "$hash"},
	}}
	svc := NewService(repo, &mockComparer{err: errors.New("mismatch")}, &mockTokenService{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "c@example.com", Password: "bad"})
	require.ErrorIs(t, err, domcustomer.ErrUnauthorized)
}
