package payment

import (
	"context"
	"time"

	"agrimart-be/internal/logger"
	"agrimart-be/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	InitiateCheckout(ctx context.Context, customerID uint, items []order.OrderItem, address string) (CheckoutInfo, error)
	VerifyPayment(ctx context.Context, gatewayOrderID, paymentID, signature string, localOrderID uint) error
}

type service struct {
	orders    order.Repository
	gateway   Gateway
	keyID     string
	keySecret string
}

func NewService(orders order.Repository, gateway Gateway, keyID, keySecret string) Service {
	return &service{orders: orders, gateway: gateway, keyID: keyID, keySecret: keySecret}
}

// InitiateCheckout creates a gateway payment intent and a local Pending order
// bound to it. The binding (gateway order id stored on the local order) is
// what VerifyPayment later checks.
func (s *service) InitiateCheckout(ctx context.Context, customerID uint, items []order.OrderItem, address string) (CheckoutInfo, error) {
	log := logger.FromCtx(ctx)

	if address == "" {
		return CheckoutInfo{}, order.ErrEmptyAddress
	}
	if len(items) == 0 {
		return CheckoutInfo{}, order.ErrNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return CheckoutInfo{}, order.ErrInvalidItem
		}
	}

	subtotal, total := order.ComputeTotal(items)
	amountMinor := order.MinorUnits(total)

	receipt := "order_rcpt_" + uuid.New().String()
	gw, err := s.gateway.CreateOrder(ctx, amountMinor, "INR", receipt)
	if err != nil {
		log.Error("failed to create gateway order", zap.Error(err))
		return CheckoutInfo{}, err
	}

	o := order.Order{
		CustomerID:     customerID,
		Items:          items,
		Total:          total,
		Address:        address,
		Status:         order.StatusPending,
		GatewayOrderID: gw.ID,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		log.Error("failed to create local order for checkout",
			zap.String("gateway_order_id", gw.ID),
			zap.Error(err),
		)
		return CheckoutInfo{}, err
	}

	log.Info("checkout initiated",
		zap.Uint("order_id", o.ID),
		zap.String("gateway_order_id", gw.ID),
		zap.Float64("subtotal", subtotal),
		zap.Int64("amount_minor", amountMinor),
	)

	return CheckoutInfo{
		KeyID:     s.keyID,
		OrderID:   gw.ID,
		Amount:    gw.Amount,
		Currency:  gw.Currency,
		DBOrderID: o.ID,
	}, nil
}

// VerifyPayment checks the gateway's payment signature and, on success, moves
// the bound local order to Processing. Fails closed: any mismatch leaves the
// order untouched.
func (s *service) VerifyPayment(ctx context.Context, gatewayOrderID, paymentID, signature string, localOrderID uint) error {
	log := logger.FromCtx(ctx)

	if !VerifyPaymentSignature(s.keySecret, gatewayOrderID, paymentID, signature) {
		log.Warn("payment signature mismatch",
			zap.String("gateway_order_id", gatewayOrderID),
			zap.Uint("order_id", localOrderID),
		)
		return ErrInvalidSignature
	}

	o, err := s.orders.GetByID(ctx, localOrderID)
	if err != nil {
		return err
	}

	// The local order must be the one the gateway intent was created for.
	if o.GatewayOrderID != gatewayOrderID {
		log.Warn("payment verify for unbound order",
			zap.Uint("order_id", localOrderID),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return ErrOrderMismatch
	}

	if err := s.orders.UpdateStatus(ctx, o.ID, order.StatusProcessing, time.Now()); err != nil {
		return err
	}

	log.Info("payment verified",
		zap.Uint("order_id", o.ID),
		zap.String("payment_id", paymentID),
	)
	return nil
}
