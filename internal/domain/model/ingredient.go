// Package model defines the core domain entities for the cafe service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ingredient represents a purchasable ingredient and its per-cup usage.
//
// UnitCost is the price in whole rupiah of one base unit (the smallest
// purchasable package, e.g. a 1000 ml bottle); UnitQuantity is the quantity
// that package contains, expressed in Unit.
type Ingredient struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Name of the ingredient, e.g. "Fresh milk".
	Name string `bson:"name" json:"name"`
	// UnitCost is the price of one base unit in rupiah.
	UnitCost float64 `bson:"unit_cost" json:"unit_cost" example:"48500"`
	// UnitQuantity is the quantity contained in one base unit.
	UnitQuantity float64 `bson:"unit_quantity" json:"unit_quantity" example:"1000"`
	// Unit is the measure label (ml, g, tsp, tbsp, cup).
	Unit string `bson:"unit" json:"unit" example:"ml"`
	// UsagePerCup is the quantity consumed to produce one cup.
	UsagePerCup float64 `bson:"usage_per_cup" json:"usage_per_cup" example:"10"`
	// CostPerCup is the last computed per-cup cost, kept as a fallback when
	// a recalculation runs against incomplete pricing data.
	CostPerCup float64   `bson:"cost_per_cup" json:"cost_per_cup"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// HasCompleteCosting reports whether the ingredient carries everything a
// shopping-list line needs: positive price, positive base quantity, and a
// unit label.
func (i Ingredient) HasCompleteCosting() bool {
	return i.UnitCost > 0 && i.UnitQuantity > 0 && i.Unit != ""
}
