package cart

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	GetByCustomer(ctx context.Context, customerID uint) (Cart, error)
	EnsureCart(ctx context.Context, customerID uint) (uint, error)
	AddItem(ctx context.Context, cartID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCustomer(ctx context.Context, customerID uint) (Cart, error) {
	c := Cart{CustomerID: customerID, Items: []CartItem{}}

	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE customer_id = $1`, customerID,
	).Scan(&c.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// No cart yet: an empty cart object, matching the API contract.
		return c, nil
	}
	if err != nil {
		return Cart{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity,
			p.id, p.farmer_id, p.name, COALESCE(p.description, ''), p.price,
			COALESCE(p.category, ''), p.quantity, p.expiry_date,
			COALESCE(p.rating, 0), COALESCE(p.image_url, '')
		 FROM cart_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.cart_id = $1
		 ORDER BY ci.id`,
		c.ID,
	)
	if err != nil {
		return Cart{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity,
			&item.Product.ID, &item.Product.FarmerID, &item.Product.Name,
			&item.Product.Description, &item.Product.Price, &item.Product.Category,
			&item.Product.Quantity, &item.Product.ExpiryDate,
			&item.Product.Rating, &item.Product.ImageURL,
		); err != nil {
			return Cart{}, err
		}
		c.Items = append(c.Items, item)
	}
	return c, rows.Err()
}

func (r *repository) EnsureCart(ctx context.Context, customerID uint) (uint, error) {
	var id uint
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO carts (customer_id) VALUES ($1)
		 ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		 RETURNING id`,
		customerID,
	).Scan(&id)
	return id, err
}

func (r *repository) AddItem(ctx context.Context, cartID, productID uint, quantity int) error {
	// Quantity accumulates when the product is already in the cart.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (cart_id, product_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		cartID, productID, quantity,
	)
	return err
}

func (r *repository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
