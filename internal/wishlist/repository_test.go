package wishlist

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByCustomerNoWishlist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id FROM wishlists").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w, err := repo.GetByCustomer(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(0), w.ID)
	assert.Equal(t, uint(7), w.CustomerID)
	assert.Empty(t, w.Products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id FROM wishlists").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	mock.ExpectQuery("SELECT p.id, p.farmer_id, p.name").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "farmer_id", "name", "description", "price",
			"category", "quantity", "expiry_date", "rating", "image_url",
		}).AddRow(10, 5, "Tomatoes", "fresh", 40.0, "vegetables", 100, nil, 4.5, ""))

	w, err := repo.GetByCustomer(context.Background(), 7)

	assert.NoError(t, err)
	require.Len(t, w.Products, 1)
	assert.Equal(t, uint(10), w.Products[0].ID)
	assert.Equal(t, "Tomatoes", w.Products[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EnsureWishlist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// The upsert returns the existing row's id on conflict.
	mock.ExpectQuery("INSERT INTO wishlists").
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	id, err := repo.EnsureWishlist(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO wishlist_items").
			WithArgs(uint(3), uint(10)).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.AddProduct(context.Background(), 3, 10))
	})

	t.Run("AlreadyOnList", func(t *testing.T) {
		// The conflict clause makes a duplicate add touch zero rows.
		mock.ExpectExec("INSERT INTO wishlist_items").
			WithArgs(uint(3), uint(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.AddProduct(context.Background(), 3, 10))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RemoveProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wishlist_items").
			WithArgs(uint(3), uint(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveProduct(context.Background(), 3, 10))
	})

	t.Run("NotOnList", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wishlist_items").
			WithArgs(uint(3), uint(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.RemoveProduct(context.Background(), 3, 99))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
