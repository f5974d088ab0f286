package product

import (
	"context"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, farmerID uint, p Product) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id uint) (Product, error)
	Update(ctx context.Context, farmerID, id uint, p Product) (Product, error)
	Delete(ctx context.Context, farmerID, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, farmerID uint, p Product) (Product, error) {
	if p.Price < 0 {
		return Product{}, ErrInvalidPrice
	}

	p.FarmerID = farmerID
	if err := s.repo.Create(ctx, &p); err != nil {
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return Product{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, farmerID, id uint, p Product) (Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if existing.FarmerID != farmerID {
		return Product{}, ErrNotOwner
	}
	if p.Price < 0 {
		return Product{}, ErrInvalidPrice
	}

	p.ID = id
	p.FarmerID = existing.FarmerID
	if err := s.repo.Update(ctx, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, farmerID, id uint) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.FarmerID != farmerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
