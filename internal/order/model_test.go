package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderStatus
		expected OrderStatus
		ok       bool
	}{
		{"Pending advances", StatusPending, StatusProcessing, true},
		{"Processing advances", StatusProcessing, StatusShipped, true},
		{"Shipped advances", StatusShipped, StatusDelivered, true},
		{"Delivered is terminal", StatusDelivered, StatusDelivered, false},
		{"Cancelled never advances", StatusCancelled, StatusCancelled, false},
		{"Unknown never advances", OrderStatus("Bogus"), OrderStatus("Bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStatus(tt.from)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("pending")) // case sensitive
	assert.False(t, ValidStatus("Refunded"))
	assert.False(t, ValidStatus(""))
}

func TestComputeTotal(t *testing.T) {
	items := []OrderItem{
		{UnitPrice: 400, Quantity: 2},
		{UnitPrice: 200, Quantity: 1},
	}

	subtotal, total := ComputeTotal(items)
	assert.Equal(t, 1000.0, subtotal)
	// 10% shipping + 8% tax on the subtotal
	assert.InDelta(t, 1180.0, total, 0.001)
}

func TestComputeTotalEmpty(t *testing.T) {
	subtotal, total := ComputeTotal(nil)
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 0.0, total)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(118000), MinorUnits(1180.0))
	assert.Equal(t, int64(100), MinorUnits(1.0))
	// Rounded, not truncated
	assert.Equal(t, int64(1), MinorUnits(0.005))
	assert.Equal(t, int64(12346), MinorUnits(123.456))
}
