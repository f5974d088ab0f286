package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]Order, error)
	UpdateStatus(ctx context.Context, id uint, status OrderStatus, at time.Time) error
	ListInProgress(ctx context.Context) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the order and its line items in one transaction. The rows
// are one logical record; a half-written order is never visible.
func (r *repository) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (customer_id, total, address, status, gateway_order_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status_updated_at, created_at`,
		o.CustomerID, o.Total, o.Address, o.Status, o.GatewayOrderID,
	).Scan(&o.ID, &o.StatusUpdatedAt, &o.CreatedAt)
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			o.ID, item.ProductID, item.Quantity, item.UnitPrice,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uint) (Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, total, address, status,
			COALESCE(gateway_order_id, ''), status_updated_at, created_at
		 FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Address, &o.Status,
		&o.GatewayOrderID, &o.StatusUpdatedAt, &o.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, err
	}

	items, err := r.fetchItems(ctx, []uint{o.ID})
	if err != nil {
		return Order{}, err
	}
	o.Items = items[o.ID]

	return o, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uint) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer_id, total, address, status,
			COALESCE(gateway_order_id, ''), status_updated_at, created_at
		 FROM orders
		 WHERE customer_id = $1
		 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	ids := []uint{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Total, &o.Address, &o.Status,
			&o.GatewayOrderID, &o.StatusUpdatedAt, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status OrderStatus, at time.Time) error {
	log := logger.FromCtx(ctx)

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, status_updated_at = $2 WHERE id = $3`,
		status, at, id,
	)
	if err != nil {
		log.Error("db: failed to update order status",
			zap.Uint("order_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ListInProgress returns orders in a non-terminal status. Items are not
// loaded; the progression loop only needs the status fields.
func (r *repository) ListInProgress(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer_id, status, status_updated_at
		 FROM orders
		 WHERE status IN ('Pending', 'Processing', 'Shipped')
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.StatusUpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) fetchItems(ctx context.Context, orderIDs []uint) (map[uint][]OrderItem, error) {
	// Small N; a query per order keeps the SQL simple.
	result := make(map[uint][]OrderItem, len(orderIDs))
	for _, id := range orderIDs {
		rows, err := r.db.QueryContext(ctx,
			`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
				COALESCE(p.name, ''), COALESCE(p.farmer_id, 0)
			 FROM order_items oi
			 LEFT JOIN products p ON p.id = oi.product_id
			 WHERE oi.order_id = $1
			 ORDER BY oi.id`,
			id,
		)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			var item OrderItem
			if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
				&item.Quantity, &item.UnitPrice,
				&item.ProductName, &item.ProductFarmerID); err != nil {
				rows.Close()
				return nil, err
			}
			result[id] = append(result[id], item)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return result, nil
}
