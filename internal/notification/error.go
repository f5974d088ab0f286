package notification

import "errors"

var (
	ErrNotFound     = errors.New("notification not found")
	ErrEmptyMessage = errors.New("notification message must not be empty")
)
