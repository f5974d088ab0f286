package notification

import "time"

// Notification is an immutable one-way message addressed to a user. Only the
// read flag ever changes, and it only flips false to true.
type Notification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	OrderID   *uint     `json:"orderId,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
