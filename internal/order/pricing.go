package order

import "math"

// Surcharge rates applied on top of the item subtotal.
const (
	ShippingRate = 0.10
	TaxRate      = 0.08
)

// ComputeTotal returns the item subtotal and the grand total including
// shipping and tax surcharges.
func ComputeTotal(items []OrderItem) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	total = subtotal + subtotal*ShippingRate + subtotal*TaxRate
	return subtotal, total
}

// MinorUnits converts an amount to gateway minor units (paise for INR).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
