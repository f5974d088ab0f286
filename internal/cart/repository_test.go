package cart

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByCustomerNoCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id FROM carts").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c, err := repo.GetByCustomer(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(0), c.ID)
	assert.Equal(t, uint(7), c.CustomerID)
	assert.Empty(t, c.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id FROM carts").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	mock.ExpectQuery("SELECT ci.id, ci.cart_id, ci.product_id").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "cart_id", "product_id", "quantity",
			"p_id", "farmer_id", "name", "description", "price",
			"category", "p_quantity", "expiry_date", "rating", "image_url",
		}).AddRow(1, 3, 10, 2, 10, 5, "Tomatoes", "fresh", 40.0, "vegetables", 100, nil, 4.5, ""))

	c, err := repo.GetByCustomer(context.Background(), 7)

	assert.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, uint(10), c.Items[0].ProductID)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "Tomatoes", c.Items[0].Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EnsureCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// The upsert returns the existing row's id on conflict.
	mock.ExpectQuery("INSERT INTO carts").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	id, err := repo.EnsureCart(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(uint(3), uint(10), 2).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.AddItem(context.Background(), 3, 10, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RemoveItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(uint(3), uint(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveItem(context.Background(), 3, 10))
	})

	t.Run("NotInCart", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(uint(3), uint(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveItem(context.Background(), 3, 99)
		assert.Equal(t, ErrCartItemNotFound, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
