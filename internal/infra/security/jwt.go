package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domcustomer "example.com/shop-checkout/internal/domain/customer"
	authuc "example.com/shop-checkout/internal/usecase/auth"
)

type JWTService struct {
	secret     []byte
	expiration time.Duration
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

type jwtClaims struct {
	CustomerID string `json:"cid"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateToken(c *domcustomer.Customer) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		CustomerID: c.ID,
		Email:      c.Email,
		Name:       c.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(token string) (*authuc.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return &authuc.Claims{
		CustomerID: claims.CustomerID,
		Email:      claims.Email,
		Name:       claims.Name,
	}, nil
}
