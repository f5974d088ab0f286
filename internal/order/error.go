package order

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotOrderOwner  = errors.New("not authorized to update this order")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrEmptyAddress   = errors.New("delivery address is required")
	ErrNoItems        = errors.New("order must contain at least one item")
	ErrInvalidItem    = errors.New("order item has invalid quantity or price")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)
