package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"

	"example.com/shop-checkout/internal/config"
	domcustomer "example.com/shop-checkout/internal/domain/customer"
	"example.com/shop-checkout/internal/domain/discount"
	"example.com/shop-checkout/internal/domain/ledger"
	domproduct "example.com/shop-checkout/internal/domain/product"
	"example.com/shop-checkout/internal/infra/persistence/memory"
	mysqlrepo "example.com/shop-checkout/internal/infra/persistence/mysql"
	"example.com/shop-checkout/internal/infra/security"
	api "example.com/shop-checkout/internal/interface/http"
	authuc "example.com/shop-checkout/internal/usecase/auth"
	cartuc "example.com/shop-checkout/internal/usecase/cart"
	cataloguc "example.com/shop-checkout/internal/usecase/catalog"
	checkoutuc "example.com/shop-checkout/internal/usecase/checkout"
	orderuc "example.com/shop-checkout/internal/usecase/order"
)

func main() {
	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	catalog := memory.NewCatalogStore()
	carts := memory.NewCartStore()
	customers := memory.NewCustomerStore()
	salesLedger := ledger.New()

	ctx := context.Background()

	var (
		mirror  cataloguc.Mirror
		archive checkoutuc.OrderArchive
		mysqlDB *sql.DB
	)
	if cfg.MySQLDSN != "" {
		mysqlDB, err = sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("mysql open: %v", err)
		}
		productRepo := mysqlrepo.NewProductRepository(mysqlDB)
		mirror = productRepo
		archive = mysqlrepo.NewOrderArchive(mysqlDB)

		loaded, err := productRepo.LoadAll(ctx)
		if err != nil {
			log.Printf("mysql: load catalog: %v (continuing with config seed)", err)
		}
		for _, p := range loaded {
			if _, err := catalog.Create(ctx, p); err != nil {
				log.Fatalf("seed catalog from mysql: %v", err)
			}
		}
		if len(loaded) > 0 {
			log.Printf("loaded %d products from mysql", len(loaded))
		}
	}

	catalogSvc := cataloguc.NewService(catalog, mirror)
	seedCatalog(ctx, cfg, catalog, catalogSvc)

	hasher := security.NewPasswordHasher(0)
	seedCustomers(cfg, customers, hasher)

	tokens := security.NewJWTService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	resolver := discount.NewResolver(nil)

	deps := api.Dependencies{
		AuthService:     authuc.NewService(customers, hasher, tokens),
		CatalogService:  catalogSvc,
		CartService:     cartuc.NewService(carts, catalog, resolver),
		CheckoutService: checkoutuc.NewService(salesLedger, archive),
		OrderService:    orderuc.NewService(salesLedger),
		TokenService:    tokens,
		AdminKey:        cfg.AdminKey,
	}

	r := api.NewAPI(deps).Router()

	if mysqlDB != nil {
		r.Get("/health/mysql", func(w http.ResponseWriter, req *http.Request) {
			hctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			if err := mysqlDB.PingContext(hctx); err != nil {
				http.Error(w, "mysql ping error: "+err.Error(), 500)
				return
			}
			w.Write([]byte("mysql ok"))
		})
	}
	if cfg.PostgresDSN != "" {
		r.Get("/health/pg", func(w http.ResponseWriter, req *http.Request) {
			hctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			conn, err := pgx.Connect(hctx, cfg.PostgresDSN)
			if err != nil {
				http.Error(w, "pg connect error: "+err.Error(), 500)
				return
			}
			defer conn.Close(hctx)
			if err := conn.Ping(hctx); err != nil {
				http.Error(w, "pg ping error: "+err.Error(), 500)
				return
			}
			w.Write([]byte("pg ok"))
		})
	}

	log.Printf("listening on :%s ...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

// seedCatalog inserts config products that are not already present
// (a MySQL-loaded catalog wins over the config seed).
func seedCatalog(ctx context.Context, cfg config.Config, catalog *memory.CatalogStore, svc *cataloguc.Service) {
	for _, seed := range cfg.Catalog {
		if _, err := catalog.GetByID(ctx, seed.ID); err == nil {
			continue
		}
		p := domproduct.New(seed.ID, seed.Name, seed.Price, seed.Stock, seed.Category)
		p.SetDiscount(seed.Discount)
		if _, err := svc.Create(ctx, p); err != nil {
			log.Fatalf("seed product %q: %v", seed.Name, err)
		}
	}
}

func seedCustomers(cfg config.Config, customers *memory.CustomerStore, hasher *security.PasswordHasher) {
	for _, seed := range cfg.Customers {
		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			log.Fatalf("seed customer %q: %v", seed.ID, err)
		}
		customers.Add(&domcustomer.Customer{
			ID:           seed.ID,
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: hash,
		})
	}
}
