package wishlist

import (
	"context"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetWishlist(ctx context.Context, customerID uint) (Wishlist, error)
	AddToWishlist(ctx context.Context, customerID, productID uint) (Wishlist, error)
	RemoveFromWishlist(ctx context.Context, customerID, productID uint) (Wishlist, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetWishlist(ctx context.Context, customerID uint) (Wishlist, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *service) AddToWishlist(ctx context.Context, customerID, productID uint) (Wishlist, error) {
	if productID == 0 {
		return Wishlist{}, ErrInvalidProduct
	}

	wishlistID, err := s.repo.EnsureWishlist(ctx, customerID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to ensure wishlist",
			zap.Uint("customer_id", customerID),
			zap.Error(err),
		)
		return Wishlist{}, err
	}

	if err := s.repo.AddProduct(ctx, wishlistID, productID); err != nil {
		return Wishlist{}, err
	}

	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *service) RemoveFromWishlist(ctx context.Context, customerID, productID uint) (Wishlist, error) {
	w, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return Wishlist{}, err
	}

	if w.ID != 0 {
		if err := s.repo.RemoveProduct(ctx, w.ID, productID); err != nil {
			return Wishlist{}, err
		}
	}

	return s.repo.GetByCustomer(ctx, customerID)
}
