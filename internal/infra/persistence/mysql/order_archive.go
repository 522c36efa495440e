package mysql

import (
	"context"
	"database/sql"

	domorder "example.com/shop-checkout/internal/domain/order"
)

// OrderArchive is a write-only mirror of created orders. Stock was
// already validated and decremented in-process before Save is called,
// so the archive records new stock levels along with the order rows.
type OrderArchive struct {
	db *sql.DB
}

func NewOrderArchive(db *sql.DB) *OrderArchive {
	return &OrderArchive{db: db}
}

func (r *OrderArchive) Save(ctx context.Context, o *domorder.Order) (retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO orders (id, customer_id, subtotal, tax, shipping_fee, total,
                            status, created_at, shipping_address, payment_method, delivery_days)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, o.ID, o.CustomerID, o.Subtotal, o.Tax, o.ShippingFee, o.Total,
		o.Status, o.CreatedAt, o.ShippingAddress, o.PaymentMethod, o.DeliveryDays)
	if err != nil {
		retErr = err
		return retErr
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
            VALUES (?, ?, ?, ?, ?)
        `, o.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			retErr = err
			return retErr
		}
		_, err = tx.ExecContext(ctx, `
            UPDATE products SET stock = stock - ?
            WHERE id = ? AND stock >= ?
        `, item.Quantity, item.ProductID, item.Quantity)
		if err != nil {
			retErr = err
			return retErr
		}
	}

	retErr = tx.Commit()
	return retErr
}
