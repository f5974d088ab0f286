package order

import (
	"context"
	"fmt"
	"time"

	"agrimart-be/internal/logger"
	"agrimart-be/internal/notification"
	"agrimart-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, customerID uint, items []OrderItem, address string) (Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]Order, error)
	Cancel(ctx context.Context, customerID, orderID uint) error
	UpdateStatus(ctx context.Context, farmerID, orderID uint, status OrderStatus) (Order, error)
	Track(ctx context.Context, customerID, orderID uint) (TrackInfo, error)
}

type service struct {
	repo     Repository
	products product.Repository
	notes    notification.Service
}

func NewService(repo Repository, products product.Repository, notes notification.Service) Service {
	return &service{repo: repo, products: products, notes: notes}
}

// Place creates an order from the given line items and notifies the farmer of
// every product in it. The total is recomputed server-side, never trusted
// from the request.
func (s *service) Place(ctx context.Context, customerID uint, items []OrderItem, address string) (Order, error) {
	log := logger.FromCtx(ctx)

	if address == "" {
		return Order{}, ErrEmptyAddress
	}
	if len(items) == 0 {
		return Order{}, ErrNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return Order{}, ErrInvalidItem
		}
	}

	_, total := ComputeTotal(items)

	o := Order{
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Address:    address,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, &o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return Order{}, err
	}

	// Notify each product's farmer. Best-effort: the order exists whether or
	// not every notification lands.
	for _, item := range o.Items {
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			log.Warn("skipping farmer notification for unknown product",
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			continue
		}

		orderID := o.ID
		msg := fmt.Sprintf("New order received for product: %s", p.Name)
		if err := s.notes.Notify(ctx, p.FarmerID, &orderID, msg); err != nil {
			log.Warn("failed to notify farmer",
				zap.Uint("farmer_id", p.FarmerID),
				zap.Uint("order_id", o.ID),
				zap.Error(err),
			)
		}
	}

	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.Uint("customer_id", customerID),
		zap.Float64("total", total),
	)

	return o, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uint) ([]Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// Cancel soft-cancels the customer's own order. History is preserved: the row
// stays with status Cancelled.
func (s *service) Cancel(ctx context.Context, customerID, orderID uint) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.CustomerID != customerID {
		return ErrOrderNotFound
	}
	if o.Status.IsTerminal() {
		return ErrNotCancellable
	}

	return s.repo.UpdateStatus(ctx, orderID, StatusCancelled, time.Now())
}

// UpdateStatus lets a farmer move an order's status, provided at least one
// line item's product belongs to them.
func (s *service) UpdateStatus(ctx context.Context, farmerID, orderID uint, status OrderStatus) (Order, error) {
	log := logger.FromCtx(ctx)

	if !ValidStatus(string(status)) {
		return Order{}, ErrInvalidStatus
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	ownsProduct := false
	for _, item := range o.Items {
		if item.ProductFarmerID == farmerID {
			ownsProduct = true
			break
		}
	}
	if !ownsProduct {
		return Order{}, ErrNotOrderOwner
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, orderID, status, now); err != nil {
		return Order{}, err
	}
	o.Status = status
	o.StatusUpdatedAt = now

	msg := fmt.Sprintf("Your order #%d status is now: %s", o.ID, status)
	if err := s.notes.Notify(ctx, o.CustomerID, &o.ID, msg); err != nil {
		log.Warn("failed to notify customer of status change",
			zap.Uint("order_id", o.ID),
			zap.Error(err),
		)
	}

	return o, nil
}

// Track returns the customer-facing view of their own order.
func (s *service) Track(ctx context.Context, customerID, orderID uint) (TrackInfo, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return TrackInfo{}, err
	}
	if o.CustomerID != customerID {
		return TrackInfo{}, ErrOrderNotFound
	}

	info := TrackInfo{
		Status:     o.Status,
		LastUpdate: o.StatusUpdatedAt,
	}

	latest, err := s.notes.LatestForOrder(ctx, customerID, orderID)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load latest order notification",
			zap.Uint("order_id", orderID),
			zap.Error(err),
		)
		return info, nil
	}
	if latest != nil {
		info.LatestMessage = &latest.Message
	}

	return info, nil
}
