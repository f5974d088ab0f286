package payment

import "errors"

// GatewayOrder is the payment-provider-side record representing an authorized
// charge amount, created before the user completes checkout.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CheckoutInfo is returned to the client to launch the hosted checkout.
type CheckoutInfo struct {
	KeyID     string `json:"keyId"`
	OrderID   string `json:"orderId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	DBOrderID uint   `json:"dbOrderId"`
}

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrOrderMismatch    = errors.New("payment does not belong to this order")
)
