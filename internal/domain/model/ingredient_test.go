package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredient_HasCompleteCosting(t *testing.T) {
	tests := []struct {
		name       string
		ingredient Ingredient
		expected   bool
	}{
		{
			name:       "complete costing",
			ingredient: Ingredient{Name: "Fresh milk", UnitCost: 48500, UnitQuantity: 1000, Unit: "ml"},
			expected:   true,
		},
		{
			name:       "zero unit cost",
			ingredient: Ingredient{Name: "Arabica beans", UnitCost: 0, UnitQuantity: 1000, Unit: "g"},
			expected:   false,
		},
		{
			name:       "zero unit quantity",
			ingredient: Ingredient{Name: "Palm sugar", UnitCost: 20000, UnitQuantity: 0, Unit: "g"},
			expected:   false,
		},
		{
			name:       "missing unit label",
			ingredient: Ingredient{Name: "Ice", UnitCost: 5000, UnitQuantity: 1000},
			expected:   false,
		},
		{
			name:       "negative unit cost",
			ingredient: Ingredient{Name: "Syrup", UnitCost: -1, UnitQuantity: 500, Unit: "ml"},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ingredient.HasCompleteCosting())
		})
	}
}

func TestEmptyShoppingList(t *testing.T) {
	list := EmptyShoppingList(60)

	assert.Equal(t, 60, list.DailyTarget)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.GrandTotal)
	assert.Zero(t, list.ItemCount)
}

func TestEmptyPurchasePlan(t *testing.T) {
	plan := EmptyPurchasePlan(30)

	assert.Equal(t, 30, plan.DailyTarget)
	assert.NotNil(t, plan.Items)
	assert.Empty(t, plan.Items)
}
