package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/shop-checkout/internal/domain/cart"
	domcustomer "example.com/shop-checkout/internal/domain/customer"
	domorder "example.com/shop-checkout/internal/domain/order"
	domproduct "example.com/shop-checkout/internal/domain/product"
	authuc "example.com/shop-checkout/internal/usecase/auth"
	cartuc "example.com/shop-checkout/internal/usecase/cart"
	cataloguc "example.com/shop-checkout/internal/usecase/catalog"
	checkoutuc "example.com/shop-checkout/internal/usecase/checkout"
	orderuc "example.com/shop-checkout/internal/usecase/order"
)

type API struct {
	authSvc     *authuc.Service
	catalogSvc  *cataloguc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	orderSvc    *orderuc.Service
	tokenSvc    authuc.TokenService
	validator   *validator.Validate
	adminKey    string
}

type Dependencies struct {
	AuthService     *authuc.Service
	CatalogService  *cataloguc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	OrderService    *orderuc.Service
	TokenService    authuc.TokenService
	AdminKey        string
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:     deps.AuthService,
		catalogSvc:  deps.CatalogService,
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		orderSvc:    deps.OrderService,
		tokenSvc:    deps.TokenService,
		validator:   validator.New(),
		adminKey:    deps.AdminKey,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me/cart", a.handleGetCart)
			pr.Post("/me/cart/items", a.handleAddCartItem)
			pr.Patch("/me/cart/items/{productID}", a.handleUpdateCartItem)
			pr.Delete("/me/cart/items/{productID}", a.handleRemoveCartItem)
			pr.Delete("/me/cart", a.handleClearCart)
			pr.Get("/me/cart/quote", a.handleQuote)
			pr.Post("/me/checkout", a.handleCheckout)
			pr.Get("/me/orders", a.handleListMyOrders)
		})

		r.Group(func(ar chi.Router) {
			ar.Use(a.requireAdminKey)

			ar.Route("/admin", func(admin chi.Router) {
				admin.Post("/products", a.handleCreateProduct)
				admin.Post("/products/{id}/restock", a.handleRestockProduct)
				admin.Patch("/products/{id}/discount", a.handleSetProductDiscount)
				admin.Patch("/products/{id}/active", a.handleSetProductActive)

				admin.Get("/orders/{id}", a.handleGetOrder)
				admin.Patch("/orders/{id}", a.handleUpdateOrderStatus)

				admin.Get("/stats", a.handleStats)
				admin.Get("/revenue", a.handleRevenue)
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":               p.ID,
		"name":             p.Name,
		"price":            p.Price,
		"discounted_price": p.DiscountedPrice(),
		"stock":            p.Stock,
		"category":         p.Category,
		"discount":         p.Discount,
		"is_active":        p.IsActive,
	}
}

func mapCart(c *domcart.Cart) map[string]any {
	items := make([]map[string]any, 0)
	for _, item := range c.Items() {
		items = append(items, map[string]any{
			"product_id": item.Product.ID,
			"name":       item.Product.Name,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
			"total":      item.TotalPrice(),
		})
	}
	return map[string]any{
		"customer_id":  c.CustomerID,
		"items":        items,
		"total_items":  c.TotalItems(),
		"subtotal":     c.Subtotal(),
		"tax":          c.Tax(),
		"shipping_fee": c.ShippingFee(),
		"total":        c.Total(),
	}
}

func mapQuote(q cartuc.Quote) map[string]any {
	return map[string]any{
		"subtotal":        q.Subtotal,
		"tax":             q.Tax,
		"shipping_fee":    q.ShippingFee,
		"total":           q.Total,
		"discount_rate":   q.DiscountRate,
		"discount_amount": q.DiscountAmount,
		"payable":         q.Payable,
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit_price": item.UnitPrice,
			"quantity":   item.Quantity,
		})
	}

	return map[string]any{
		"id":               o.ID,
		"customer_id":      o.CustomerID,
		"items":            items,
		"subtotal":         o.Subtotal,
		"tax":              o.Tax,
		"shipping_fee":     o.ShippingFee,
		"total":            o.Total,
		"status":           o.Status,
		"created_at":       o.CreatedAt,
		"shipping_address": o.ShippingAddress,
		"payment_method":   o.PaymentMethod,
		"delivery_days":    o.DeliveryDays,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, domcustomer.ErrCustomerNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcustomer.ErrUnauthorized),
		errors.Is(err, domcustomer.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domproduct.ErrOutOfStock),
		errors.Is(err, domproduct.ErrProductInactive),
		errors.Is(err, domcart.ErrItemNotFound),
		errors.Is(err, domorder.ErrEmptyCart),
		errors.Is(err, domorder.ErrInsufficientStock),
		errors.Is(err, domorder.ErrInvalidStatus):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
