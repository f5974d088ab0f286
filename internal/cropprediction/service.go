package cropprediction

import "context"

type Service interface {
	Create(ctx context.Context, p CropPrediction) (CropPrediction, error)
	List(ctx context.Context) ([]CropPrediction, error)
	Get(ctx context.Context, id uint) (CropPrediction, error)
	Update(ctx context.Context, id uint, p CropPrediction) (CropPrediction, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, p CropPrediction) (CropPrediction, error) {
	if err := p.Validate(); err != nil {
		return CropPrediction{}, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return CropPrediction{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]CropPrediction, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (CropPrediction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, p CropPrediction) (CropPrediction, error) {
	if err := p.Validate(); err != nil {
		return CropPrediction{}, err
	}

	p.ID = id
	if err := s.repo.Update(ctx, &p); err != nil {
		return CropPrediction{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
