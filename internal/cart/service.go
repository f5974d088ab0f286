package cart

import (
	"context"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetCart(ctx context.Context, customerID uint) (Cart, error)
	AddToCart(ctx context.Context, customerID, productID uint, quantity int) (Cart, error)
	RemoveFromCart(ctx context.Context, customerID, productID uint) (Cart, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCart(ctx context.Context, customerID uint) (Cart, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *service) AddToCart(ctx context.Context, customerID, productID uint, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	cartID, err := s.repo.EnsureCart(ctx, customerID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to ensure cart",
			zap.Uint("customer_id", customerID),
			zap.Error(err),
		)
		return Cart{}, err
	}

	if err := s.repo.AddItem(ctx, cartID, productID, quantity); err != nil {
		return Cart{}, err
	}

	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *service) RemoveFromCart(ctx context.Context, customerID, productID uint) (Cart, error) {
	cart, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return Cart{}, err
	}

	if cart.ID != 0 {
		if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil && err != ErrCartItemNotFound {
			return Cart{}, err
		}
	}

	return s.repo.GetByCustomer(ctx, customerID)
}
