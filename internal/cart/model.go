package cart

import (
	"agrimart-be/internal/product"
)

type Cart struct {
	ID         uint       `json:"id"`
	CustomerID uint       `json:"customerId"`
	Items      []CartItem `json:"items"`
}

type CartItem struct {
	ID        uint            `json:"id"`
	CartID    uint            `json:"-"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   product.Product `json:"product"`
}
