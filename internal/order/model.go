package order

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// statusFlow is the fulfillment pipeline the progression loop walks. Cancelled
// sits outside the flow and is reached only by explicit cancellation.
var statusFlow = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

// NextStatus returns the next status in the fulfillment pipeline. ok is false
// when the status is terminal or not part of the flow.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	for i, cur := range statusFlow {
		if cur == s && i < len(statusFlow)-1 {
			return statusFlow[i+1], true
		}
	}
	return s, false
}

// IsTerminal reports whether no further automated transition applies.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidStatus reports whether s names a member of the closed status set.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint        `json:"id"`
	CustomerID      uint        `json:"customerId"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Address         string      `json:"address"`
	Status          OrderStatus `json:"status"`
	GatewayOrderID  string      `json:"-"`
	StatusUpdatedAt time.Time   `json:"statusUpdatedAt"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"-"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`

	// Joined from products for ownership checks and notifications.
	ProductName     string `json:"productName,omitempty"`
	ProductFarmerID uint   `json:"-"`
}

// TrackInfo is the customer-facing tracking summary.
type TrackInfo struct {
	Status        OrderStatus `json:"status"`
	LastUpdate    time.Time   `json:"lastUpdate"`
	LatestMessage *string     `json:"latestMessage"`
}
