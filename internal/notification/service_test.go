package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, n *Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uint) ([]Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockRepository) ListByOrder(ctx context.Context, userID, orderID uint) ([]Notification, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockRepository) LatestForOrder(ctx context.Context, userID, orderID uint) (*Notification, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, id uint) (Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Notification), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func TestService_Notify(t *testing.T) {
	ctx := context.Background()
	orderID := uint(100)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.UserID == 7 && *n.OrderID == orderID && n.Message == "hello"
		})).Return(nil)

		assert.NoError(t, svc.Notify(ctx, 7, &orderID, "hello"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		err := svc.Notify(ctx, 7, &orderID, "")
		assert.Equal(t, ErrEmptyMessage, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("WithoutOrder", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.OrderID == nil
		})).Return(nil)

		assert.NoError(t, svc.Notify(ctx, 7, nil, "welcome"))
	})
}
