package wishlist

import (
	"context"
	"database/sql"
	"errors"

	"agrimart-be/internal/product"
)

type Repository interface {
	GetByCustomer(ctx context.Context, customerID uint) (Wishlist, error)
	EnsureWishlist(ctx context.Context, customerID uint) (uint, error)
	AddProduct(ctx context.Context, wishlistID, productID uint) error
	RemoveProduct(ctx context.Context, wishlistID, productID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCustomer(ctx context.Context, customerID uint) (Wishlist, error) {
	w := Wishlist{CustomerID: customerID, Products: []product.Product{}}

	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM wishlists WHERE customer_id = $1`, customerID,
	).Scan(&w.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// No wishlist yet: an empty wishlist object, matching the API contract.
		return w, nil
	}
	if err != nil {
		return Wishlist{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.farmer_id, p.name, COALESCE(p.description, ''), p.price,
			COALESCE(p.category, ''), p.quantity, p.expiry_date,
			COALESCE(p.rating, 0), COALESCE(p.image_url, '')
		 FROM wishlist_items wi
		 JOIN products p ON p.id = wi.product_id
		 WHERE wi.wishlist_id = $1
		 ORDER BY wi.id`,
		w.ID,
	)
	if err != nil {
		return Wishlist{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p product.Product
		if err := rows.Scan(
			&p.ID, &p.FarmerID, &p.Name, &p.Description, &p.Price,
			&p.Category, &p.Quantity, &p.ExpiryDate, &p.Rating, &p.ImageURL,
		); err != nil {
			return Wishlist{}, err
		}
		w.Products = append(w.Products, p)
	}
	return w, rows.Err()
}

func (r *repository) EnsureWishlist(ctx context.Context, customerID uint) (uint, error) {
	var id uint
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO wishlists (customer_id) VALUES ($1)
		 ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		 RETURNING id`,
		customerID,
	).Scan(&id)
	return id, err
}

func (r *repository) AddProduct(ctx context.Context, wishlistID, productID uint) error {
	// Adding a product already on the list is a no-op.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wishlist_items (wishlist_id, product_id)
		 VALUES ($1, $2)
		 ON CONFLICT (wishlist_id, product_id) DO NOTHING`,
		wishlistID, productID,
	)
	return err
}

func (r *repository) RemoveProduct(ctx context.Context, wishlistID, productID uint) error {
	// Removing a product that is not on the list is a no-op.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_items WHERE wishlist_id = $1 AND product_id = $2`,
		wishlistID, productID,
	)
	return err
}
