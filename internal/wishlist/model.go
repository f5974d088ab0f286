package wishlist

import (
	"agrimart-be/internal/product"
)

type Wishlist struct {
	ID         uint              `json:"id"`
	CustomerID uint              `json:"customerId"`
	Products   []product.Product `json:"products"`
}
