package product

import "time"

type Product struct {
	ID          uint       `json:"id"`
	FarmerID    uint       `json:"farmerId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Category    string     `json:"category,omitempty"`
	Quantity    int        `json:"quantity"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	Rating      float64    `json:"rating"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}
