package http

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

type ctxKey int

const ctxCustomerKey ctxKey = 0

var (
	errUnauthenticated = errors.New("unauthenticated")
	errForbidden       = errors.New("forbidden")
)

type authCustomer struct {
	CustomerID string
	Email      string
	Name       string
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.tokenSvc.ParseToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxCustomerKey, &authCustomer{
			CustomerID: claims.CustomerID,
			Email:      claims.Email,
			Name:       claims.Name,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Admin routes are gated by a shared key header instead of customer
// tokens; there is no staff account model in this service.
func (a *API) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-Admin-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(a.adminKey)) != 1 {
			respondError(w, http.StatusForbidden, errForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getAuthCustomer(ctx context.Context) *authCustomer {
	val := ctx.Value(ctxCustomerKey)
	if c, ok := val.(*authCustomer); ok {
		return c
	}
	return nil
}
