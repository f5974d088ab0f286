package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrimart-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus, at time.Time) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}

func (m *MockOrderRepository) ListInProgress(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GatewayOrder), args.Error(1)
}

// --- Tests ---

func TestService_InitiateCheckout(t *testing.T) {
	ctx := context.Background()
	customerID := uint(7)

	items := []order.OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: 400},
		{ProductID: 2, Quantity: 1, UnitPrice: 200},
	}

	t.Run("Success", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockOrders, mockGateway, "rzp_key", "rzp_secret")

		// Subtotal 1000 becomes 1180 with surcharges, 118000 in paise.
		mockGateway.On("CreateOrder", ctx, int64(118000), "INR", mock.AnythingOfType("string")).
			Return(&GatewayOrder{ID: "order_gw1", Amount: 118000, Currency: "INR", Status: "created"}, nil)

		mockOrders.On("Create", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.GatewayOrderID == "order_gw1" && o.Status == order.StatusPending
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*order.Order).ID = 100
		}).Return(nil)

		info, err := svc.InitiateCheckout(ctx, customerID, items, "12 Farm Road")

		assert.NoError(t, err)
		assert.Equal(t, "rzp_key", info.KeyID)
		assert.Equal(t, "order_gw1", info.OrderID)
		assert.Equal(t, int64(118000), info.Amount)
		assert.Equal(t, "INR", info.Currency)
		assert.Equal(t, uint(100), info.DBOrderID)
		mockOrders.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("EmptyAddress", func(t *testing.T) {
		svc := NewService(new(MockOrderRepository), new(MockGateway), "k", "s")
		_, err := svc.InitiateCheckout(ctx, customerID, items, "")
		assert.Equal(t, order.ErrEmptyAddress, err)
	})

	t.Run("NoItems", func(t *testing.T) {
		svc := NewService(new(MockOrderRepository), new(MockGateway), "k", "s")
		_, err := svc.InitiateCheckout(ctx, customerID, nil, "12 Farm Road")
		assert.Equal(t, order.ErrNoItems, err)
	})

	t.Run("InvalidItem", func(t *testing.T) {
		svc := NewService(new(MockOrderRepository), new(MockGateway), "k", "s")
		bad := []order.OrderItem{{ProductID: 1, Quantity: -1, UnitPrice: 10}}
		_, err := svc.InitiateCheckout(ctx, customerID, bad, "12 Farm Road")
		assert.Equal(t, order.ErrInvalidItem, err)
	})

	t.Run("GatewayError", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockOrders, mockGateway, "k", "s")

		mockGateway.On("CreateOrder", ctx, mock.Anything, "INR", mock.Anything).
			Return(nil, errors.New("gateway down"))

		_, err := svc.InitiateCheckout(ctx, customerID, items, "12 Farm Road")
		assert.Error(t, err)
		mockOrders.AssertNotCalled(t, "Create")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockOrders, mockGateway, "k", "s")

		mockGateway.On("CreateOrder", ctx, mock.Anything, "INR", mock.Anything).
			Return(&GatewayOrder{ID: "order_gw1", Amount: 118000, Currency: "INR"}, nil)
		mockOrders.On("Create", ctx, mock.Anything).Return(errors.New("db error"))

		_, err := svc.InitiateCheckout(ctx, customerID, items, "12 Farm Road")
		assert.Error(t, err)
	})
}

func TestService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	secret := "rzp_secret"
	orderID := uint(100)

	t.Run("Success", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockOrders, new(MockGateway), "k", secret)

		sig := SignPayment(secret, "order_gw1", "pay_1")

		mockOrders.On("GetByID", ctx, orderID).
			Return(order.Order{ID: orderID, GatewayOrderID: "order_gw1", Status: order.StatusPending}, nil)
		mockOrders.On("UpdateStatus", ctx, orderID, order.StatusProcessing, mock.AnythingOfType("time.Time")).
			Return(nil)

		err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", sig, orderID)
		assert.NoError(t, err)
		mockOrders.AssertExpectations(t)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockOrders, new(MockGateway), "k", secret)

		err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", "bogus", orderID)
		assert.Equal(t, ErrInvalidSignature, err)
		// Fails closed: the order is never touched.
		mockOrders.AssertNotCalled(t, "GetByID")
		mockOrders.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("WrongOrderBinding", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockOrders, new(MockGateway), "k", secret)

		// Valid signature for a gateway order the local order was not created for.
		sig := SignPayment(secret, "order_other", "pay_1")

		mockOrders.On("GetByID", ctx, orderID).
			Return(order.Order{ID: orderID, GatewayOrderID: "order_gw1"}, nil)

		err := svc.VerifyPayment(ctx, "order_other", "pay_1", sig, orderID)
		assert.Equal(t, ErrOrderMismatch, err)
		mockOrders.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockOrders, new(MockGateway), "k", secret)

		sig := SignPayment(secret, "order_gw1", "pay_1")
		mockOrders.On("GetByID", ctx, orderID).Return(order.Order{}, order.ErrOrderNotFound)

		err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", sig, orderID)
		assert.Equal(t, order.ErrOrderNotFound, err)
	})

	t.Run("UpdateError", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockOrders, new(MockGateway), "k", secret)

		sig := SignPayment(secret, "order_gw1", "pay_1")
		mockOrders.On("GetByID", ctx, orderID).
			Return(order.Order{ID: orderID, GatewayOrderID: "order_gw1"}, nil)
		mockOrders.On("UpdateStatus", ctx, orderID, order.StatusProcessing, mock.AnythingOfType("time.Time")).
			Return(errors.New("db error"))

		err := svc.VerifyPayment(ctx, "order_gw1", "pay_1", sig, orderID)
		assert.Error(t, err)
	})
}
