package mysql

import (
	"context"
	"database/sql"

	domproduct "example.com/shop-checkout/internal/domain/product"
)

// ProductRepository mirrors catalog state into MySQL. The in-memory
// catalog stays authoritative at runtime; this repository seeds it on
// startup and receives write-throughs for mutations.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) LoadAll(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, price, stock, category, discount, is_active
        FROM products
        ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		p := &domproduct.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Discount, &p.IsActive); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO products (id, name, price, stock, category, discount, is_active)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
            name = VALUES(name), price = VALUES(price), stock = VALUES(stock),
            category = VALUES(category), discount = VALUES(discount), is_active = VALUES(is_active)
    `, p.ID, p.Name, p.Price, p.Stock, p.Category, p.Discount, p.IsActive)
	return err
}

func (r *ProductRepository) SaveStock(ctx context.Context, id int64, stock int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET stock = ? WHERE id = ?`, stock, id)
	return err
}

func (r *ProductRepository) SaveDiscount(ctx context.Context, id int64, pct float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET discount = ? WHERE id = ?`, pct, id)
	return err
}

func (r *ProductRepository) SaveActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET is_active = ? WHERE id = ?`, active, id)
	return err
}
