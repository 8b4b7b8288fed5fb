package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStockLevel_Apply(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		start      float64
		movement   StockMovement
		wantOnHand float64
	}{
		{
			name:       "in adds quantity",
			start:      100,
			movement:   StockMovement{Type: MovementIn, Quantity: 50, RecordedAt: now},
			wantOnHand: 150,
		},
		{
			name:       "out subtracts quantity",
			start:      100,
			movement:   StockMovement{Type: MovementOut, Quantity: 30, RecordedAt: now},
			wantOnHand: 70,
		},
		{
			name:       "out never goes negative",
			start:      20,
			movement:   StockMovement{Type: MovementOut, Quantity: 50, RecordedAt: now},
			wantOnHand: 0,
		},
		{
			name:       "adjust sets absolute level",
			start:      100,
			movement:   StockMovement{Type: MovementAdjust, Quantity: 42, RecordedAt: now},
			wantOnHand: 42,
		},
		{
			name:       "adjust to zero",
			start:      100,
			movement:   StockMovement{Type: MovementAdjust, Quantity: 0, RecordedAt: now},
			wantOnHand: 0,
		},
		{
			name:       "unknown type is ignored",
			start:      100,
			movement:   StockMovement{Type: "transfer", Quantity: 50, RecordedAt: now},
			wantOnHand: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := StockLevel{OnHand: tt.start}
			level.Apply(tt.movement)

			assert.Equal(t, tt.wantOnHand, level.OnHand)
			assert.Equal(t, now, level.UpdatedAt)
		})
	}
}

func TestStockLevel_Apply_Sequence(t *testing.T) {
	level := StockLevel{}

	movements := []StockMovement{
		{Type: MovementIn, Quantity: 1000},
		{Type: MovementOut, Quantity: 250},
		{Type: MovementOut, Quantity: 250},
		{Type: MovementAdjust, Quantity: 480},
		{Type: MovementIn, Quantity: 20},
	}
	for _, m := range movements {
		level.Apply(m)
	}

	assert.Equal(t, 500.0, level.OnHand)
}
