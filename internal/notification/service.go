package notification

import (
	"context"
)

type Service interface {
	Notify(ctx context.Context, userID uint, orderID *uint, message string) error
	Inbox(ctx context.Context, userID uint) ([]Notification, error)
	ForOrder(ctx context.Context, userID, orderID uint) ([]Notification, error)
	LatestForOrder(ctx context.Context, userID, orderID uint) (*Notification, error)
	MarkRead(ctx context.Context, id uint) (Notification, error)
	Delete(ctx context.Context, id, userID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uint, orderID *uint, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	n := &Notification{UserID: userID, OrderID: orderID, Message: message}
	return s.repo.Create(ctx, n)
}

func (s *service) Inbox(ctx context.Context, userID uint) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ForOrder(ctx context.Context, userID, orderID uint) ([]Notification, error) {
	return s.repo.ListByOrder(ctx, userID, orderID)
}

func (s *service) LatestForOrder(ctx context.Context, userID, orderID uint) (*Notification, error) {
	return s.repo.LatestForOrder(ctx, userID, orderID)
}

func (s *service) MarkRead(ctx context.Context, id uint) (Notification, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *service) Delete(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}
