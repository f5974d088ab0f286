package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByCustomer(ctx context.Context, customerID uint) (Cart, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(Cart), args.Error(1)
}

func (m *MockRepository) EnsureCart(ctx context.Context, customerID uint) (uint, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockRepository) AddItem(ctx context.Context, cartID, productID uint, quantity int) error {
	args := m.Called(ctx, cartID, productID, quantity)
	return args.Error(0)
}

func (m *MockRepository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func TestService_AddToCart(t *testing.T) {
	ctx := context.Background()
	customerID := uint(7)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("EnsureCart", ctx, customerID).Return(uint(3), nil)
		mockRepo.On("AddItem", ctx, uint(3), uint(10), 2).Return(nil)
		mockRepo.On("GetByCustomer", ctx, customerID).Return(Cart{
			ID:         3,
			CustomerID: customerID,
			Items:      []CartItem{{ProductID: 10, Quantity: 2}},
		}, nil)

		cart, err := svc.AddToCart(ctx, customerID, 10, 2)
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.AddToCart(ctx, customerID, 10, 0)
		assert.Equal(t, ErrInvalidQuantity, err)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.AddToCart(ctx, customerID, 10, -1)
		assert.Equal(t, ErrInvalidQuantity, err)
	})

	t.Run("EnsureCartError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("EnsureCart", ctx, customerID).Return(uint(0), errors.New("db error"))

		_, err := svc.AddToCart(ctx, customerID, 10, 1)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "AddItem")
	})
}

func TestService_GetCart(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	// A customer who never added anything still gets an empty cart, not an error.
	mockRepo.On("GetByCustomer", ctx, uint(7)).Return(Cart{CustomerID: 7, Items: []CartItem{}}, nil)

	cart, err := svc.GetCart(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestService_RemoveFromCart(t *testing.T) {
	ctx := context.Background()
	customerID := uint(7)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		full := Cart{ID: 3, CustomerID: customerID, Items: []CartItem{{ProductID: 10, Quantity: 2}}}
		empty := Cart{ID: 3, CustomerID: customerID, Items: []CartItem{}}

		mockRepo.On("GetByCustomer", ctx, customerID).Return(full, nil).Once()
		mockRepo.On("RemoveItem", ctx, uint(3), uint(10)).Return(nil)
		mockRepo.On("GetByCustomer", ctx, customerID).Return(empty, nil).Once()

		cart, err := svc.RemoveFromCart(ctx, customerID, 10)
		assert.NoError(t, err)
		assert.Empty(t, cart.Items)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingItemIsNoOp", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		cart := Cart{ID: 3, CustomerID: customerID, Items: []CartItem{}}
		mockRepo.On("GetByCustomer", ctx, customerID).Return(cart, nil)
		mockRepo.On("RemoveItem", ctx, uint(3), uint(99)).Return(ErrCartItemNotFound)

		got, err := svc.RemoveFromCart(ctx, customerID, 99)
		assert.NoError(t, err)
		assert.Empty(t, got.Items)
	})

	t.Run("NoCartYet", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		// Cart ID zero means no cart row exists; nothing to remove.
		mockRepo.On("GetByCustomer", ctx, customerID).Return(Cart{CustomerID: customerID}, nil)

		_, err := svc.RemoveFromCart(ctx, customerID, 10)
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "RemoveItem")
	})
}
