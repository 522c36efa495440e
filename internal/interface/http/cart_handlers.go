package http

import (
	"net/http"

	domorder "example.com/shop-checkout/internal/domain/order"
)

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.AddToCart(r.Context(), customer.CustomerID, req.ProductID, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapCart(a.cartSvc.GetCart(customer.CustomerID)))
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.UpdateQuantity(customer.CustomerID, productID, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(customer.CustomerID)))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	a.cartSvc.RemoveFromCart(customer.CustomerID, productID)
	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(customer.CustomerID)))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	a.cartSvc.ClearCart(customer.CustomerID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	writeJSON(w, http.StatusOK, mapCart(a.cartSvc.GetCart(customer.CustomerID)))
}

func (a *API) handleQuote(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	writeJSON(w, http.StatusOK, mapQuote(a.cartSvc.Quote(customer.CustomerID)))
}

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c := a.cartSvc.GetCart(customer.CustomerID)
	order, err := a.checkoutSvc.CreateOrder(
		r.Context(),
		customer.CustomerID,
		c,
		req.ShippingAddress,
		domorder.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	a.cartSvc.ClearCart(customer.CustomerID)
	writeJSON(w, http.StatusCreated, mapOrder(order))
}
