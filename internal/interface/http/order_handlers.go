package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	domorder "example.com/shop-checkout/internal/domain/order"
)

func (a *API) handleListMyOrders(w http.ResponseWriter, r *http.Request) {
	customer := getAuthCustomer(r.Context())
	if customer == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	orders := a.orderSvc.ListByCustomer(customer.CustomerID)
	out := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := a.orderSvc.Find(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(o))
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (a *API) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	o, err := a.orderSvc.UpdateStatus(chi.URLParam(r, "id"), domorder.Status(req.Status))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(o))
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := a.orderSvc.Summary(time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"total_orders":     stats.TotalOrders,
		"revenue":          stats.Revenue,
		"best_seller":      stats.BestSeller,
		"sales_by_product": stats.SalesByProduct,
	})
}

func (a *API) handleRevenue(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("start must be RFC3339"))
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("end must be RFC3339"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"start":   start,
		"end":     end,
		"revenue": a.orderSvc.Revenue(start, end),
	})
}
