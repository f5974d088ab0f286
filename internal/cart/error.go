package cart

import "errors"

var (
	ErrInvalidQuantity  = errors.New("invalid cart quantity")
	ErrCartItemNotFound = errors.New("cart item not found")

	// PgUniqueViolation is the Postgres error code for duplicate keys.
	PgUniqueViolation = "23505"
)
