package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShoppingListRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ShoppingListRequest
		wantErr error
	}{
		{
			name:    "valid target",
			request: ShoppingListRequest{DailyTarget: 60},
			wantErr: nil,
		},
		{
			name: "valid with inline ingredients",
			request: ShoppingListRequest{
				DailyTarget: 10,
				Ingredients: []IngredientInput{
					{Name: "Fresh milk", UnitCost: 48500, UnitQuantity: 1000, Unit: "ml", UsagePerCup: 10},
				},
			},
			wantErr: nil,
		},
		{
			name:    "zero target",
			request: ShoppingListRequest{DailyTarget: 0},
			wantErr: ErrInvalidDailyTarget,
		},
		{
			name:    "negative target",
			request: ShoppingListRequest{DailyTarget: -5},
			wantErr: ErrInvalidDailyTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestPurchasePlanRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request PurchasePlanRequest
		wantErr error
	}{
		{
			name:    "valid target",
			request: PurchasePlanRequest{DailyTarget: 30},
			wantErr: nil,
		},
		{
			name:    "valid with stock overrides",
			request: PurchasePlanRequest{DailyTarget: 30, OnHand: map[string]float64{"abc": 500}},
			wantErr: nil,
		},
		{
			name:    "zero target",
			request: PurchasePlanRequest{DailyTarget: 0},
			wantErr: ErrInvalidDailyTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "daily_target", Message: "must be a positive integer"}
	assert.Equal(t, "daily_target: must be a positive integer", err.Error())
}
