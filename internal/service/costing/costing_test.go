package costing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCostPerUnit tests per-cup cost computation and its fallbacks.
func TestCostPerUnit(t *testing.T) {
	tests := []struct {
		name     string
		unitCost float64
		unitQty  float64
		usage    float64
		fallback float64
		expected float64
	}{
		{
			name:     "milk 48500 per 1000ml at 10ml per cup",
			unitCost: 48500, unitQty: 1000, usage: 10,
			expected: 485,
		},
		{
			name:     "rounds to nearest rupiah",
			unitCost: 10000, unitQty: 3, usage: 1,
			expected: 3333,
		},
		{
			name:     "zero usage costs nothing",
			unitCost: 48500, unitQty: 1000, usage: 0,
			expected: 0,
		},
		{
			name:     "zero unit cost falls back",
			unitCost: 0, unitQty: 1000, usage: 10, fallback: 485,
			expected: 485,
		},
		{
			name:     "negative unit quantity falls back",
			unitCost: 48500, unitQty: -1, usage: 10, fallback: 500,
			expected: 500,
		},
		{
			name:     "negative usage falls back",
			unitCost: 48500, unitQty: 1000, usage: -5, fallback: 485,
			expected: 485,
		},
		{
			name:     "missing data with no stored fallback returns zero",
			unitCost: 0, unitQty: 0, usage: 10,
			expected: 0,
		},
		{
			name:     "negative fallback is clamped to zero",
			unitCost: 0, unitQty: 0, usage: 10, fallback: -100,
			expected: 0,
		},
		{
			name:     "NaN fallback is clamped to zero",
			unitCost: -1, unitQty: 1000, usage: 10, fallback: math.NaN(),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CostPerUnit(tt.unitCost, tt.unitQty, tt.usage, tt.fallback)
			assert.Equal(t, tt.expected, got)
			assert.False(t, math.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

// TestTotalNeeded tests daily projection with null-safety.
func TestTotalNeeded(t *testing.T) {
	tests := []struct {
		name     string
		usage    float64
		target   int
		expected float64
	}{
		{name: "10ml for 60 cups", usage: 10, target: 60, expected: 600},
		{name: "fractional usage", usage: 2.5, target: 4, expected: 10},
		{name: "zero target", usage: 10, target: 0, expected: 0},
		{name: "negative target", usage: 10, target: -3, expected: 0},
		{name: "zero usage", usage: 0, target: 60, expected: 0},
		{name: "negative usage", usage: -1, target: 60, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalNeeded(tt.usage, tt.target))
		})
	}
}

// TestDeficit tests stock netting floored at zero.
func TestDeficit(t *testing.T) {
	assert.Equal(t, 400.0, Deficit(600, 200))
	assert.Equal(t, 0.0, Deficit(600, 600))
	assert.Equal(t, 0.0, Deficit(600, 900))
	assert.Equal(t, 600.0, Deficit(600, 0))
	assert.Equal(t, 600.0, Deficit(600, -50), "negative stock counts as zero")
	assert.Equal(t, 0.0, Deficit(0, 100))
	assert.Equal(t, 0.0, Deficit(-10, 0))
}

// TestRoundToPurchase tests minimum-purchase rounding.
func TestRoundToPurchase(t *testing.T) {
	tests := []struct {
		name     string
		required float64
		baseSize float64
		expected Purchase
	}{
		{
			name:     "1100 needed from 1000ml bottles buys two",
			required: 1100, baseSize: 1000,
			expected: Purchase{Units: 2, Quantity: 2000},
		},
		{
			name:     "600 needed from 1000ml bottles buys one",
			required: 600, baseSize: 1000,
			expected: Purchase{Units: 1, Quantity: 1000},
		},
		{
			name:     "exact multiple buys exactly",
			required: 2000, baseSize: 1000,
			expected: Purchase{Units: 2, Quantity: 2000},
		},
		{
			name:     "zero requirement buys nothing",
			required: 0, baseSize: 1000,
			expected: Purchase{},
		},
		{
			name:     "negative requirement buys nothing",
			required: -5, baseSize: 1000,
			expected: Purchase{},
		},
		{
			name:     "invalid base size passes requirement through",
			required: 600, baseSize: 0,
			expected: Purchase{Units: 0, Quantity: 600},
		},
		{
			name:     "negative base size passes requirement through",
			required: 600, baseSize: -10,
			expected: Purchase{Units: 0, Quantity: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToPurchase(tt.required, tt.baseSize))
		})
	}
}

// TestFormatQuantity tests display-unit conversion at thresholds.
func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		unit     string
		expected string
	}{
		{name: "below ml threshold stays raw", qty: 500, unit: "ml", expected: "500 ml"},
		{name: "above ml threshold converts", qty: 1500, unit: "ml", expected: "1500 ml (1.5 l)"},
		{name: "at ml threshold converts", qty: 1000, unit: "ml", expected: "1000 ml (1 l)"},
		{name: "grams to kilograms", qty: 2345, unit: "g", expected: "2345 g (2.35 kg)"},
		{name: "teaspoons to tablespoons", qty: 9, unit: "tsp", expected: "9 tsp (3 tbsp)"},
		{name: "tablespoons to cups", qty: 32, unit: "tbsp", expected: "32 tbsp (2 cup)"},
		{name: "below tsp threshold", qty: 2, unit: "tsp", expected: "2 tsp"},
		{name: "unknown unit renders as-is", qty: 5, unit: "shot", expected: "5 shot"},
		{name: "empty unit falls back", qty: 3, unit: "", expected: "3 unit"},
		{name: "fractional raw quantity", qty: 2.5, unit: "ml", expected: "2.5 ml"},
		{name: "converted rounds to two decimals", qty: 1234, unit: "ml", expected: "1234 ml (1.23 l)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuantity(tt.qty, tt.unit))
		})
	}
}
