package http

import (
	"net/http"

	authuc "example.com/shop-checkout/internal/usecase/auth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := a.authSvc.Login(r.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": res.Token,
		"customer": map[string]any{
			"id":     res.Customer.ID,
			"name":   res.Customer.Name,
			"email":  res.Customer.Email,
			"is_vip": res.Customer.IsVIP(),
		},
	})
}
