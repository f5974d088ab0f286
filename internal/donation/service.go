package donation

import (
	"context"
	"time"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, d Donation) (Donation, error)
	ListAll(ctx context.Context) ([]Donation, error)
	ListByFarmer(ctx context.Context, farmerID uint) ([]Donation, error)
	Get(ctx context.Context, id uint) (Donation, error)
	SetStatus(ctx context.Context, id uint, status DonationStatus) (Donation, error)
	DistributeFunds(ctx context.Context, id uint) (Donation, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, d Donation) (Donation, error) {
	if len(d.Images) == 0 {
		return Donation{}, ErrNoImages
	}
	if d.AccountNumber == "" || d.IFSCCode == "" || d.BankHolderName == "" ||
		d.BankName == "" || d.BranchName == "" || d.DonationPurpose == "" {
		return Donation{}, ErrMissingFields
	}
	if d.AmountRequired <= 0 {
		return Donation{}, ErrInvalidAmount
	}

	d.Status = StatusPending
	if err := s.repo.Create(ctx, &d); err != nil {
		logger.FromCtx(ctx).Error("failed to create donation",
			zap.Uint("farmer_id", d.FarmerID),
			zap.Error(err),
		)
		return Donation{}, err
	}
	return d, nil
}

func (s *service) ListAll(ctx context.Context) ([]Donation, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListByFarmer(ctx context.Context, farmerID uint) ([]Donation, error) {
	return s.repo.ListByFarmer(ctx, farmerID)
}

func (s *service) Get(ctx context.Context, id uint) (Donation, error) {
	return s.repo.GetByID(ctx, id)
}

// SetStatus moves a donation through review. Rejection always resets the
// fund-distribution state, even when funds were already marked distributed.
func (s *service) SetStatus(ctx context.Context, id uint, status DonationStatus) (Donation, error) {
	if !ValidStatus(string(status)) {
		return Donation{}, ErrInvalidStatus
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Donation{}, err
	}

	if status == StatusRejected {
		d.FundDistributed = false
		d.FundDistributedAt = nil
	}
	d.Status = status

	if err := s.repo.UpdateStatus(ctx, &d); err != nil {
		return Donation{}, err
	}
	return d, nil
}

// DistributeFunds marks an approved donation as paid out.
func (s *service) DistributeFunds(ctx context.Context, id uint) (Donation, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Donation{}, err
	}

	if d.Status != StatusApproved {
		return Donation{}, ErrNotApproved
	}

	now := time.Now()
	if err := s.repo.MarkDistributed(ctx, id, now); err != nil {
		return Donation{}, err
	}

	d.FundDistributed = true
	d.FundDistributedAt = &now
	return d, nil
}
