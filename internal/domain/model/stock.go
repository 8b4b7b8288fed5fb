package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movement types for stock entries.
const (
	MovementIn     = "in"     // goods received
	MovementOut    = "out"    // consumed or sold
	MovementAdjust = "adjust" // absolute correction after a count
)

// StockMovement is one ledger entry against an ingredient's on-hand level.
// For in/out the quantity is a delta; for adjust it is the counted absolute
// level.
type StockMovement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IngredientID primitive.ObjectID `bson:"ingredient_id" json:"ingredient_id"`
	Type         string             `bson:"type" json:"type"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`
	RecordedAt   time.Time          `bson:"recorded_at" json:"recorded_at"`
}

// StockLevel is the current on-hand quantity for an ingredient.
type StockLevel struct {
	IngredientID primitive.ObjectID `bson:"_id" json:"ingredient_id"`
	Name         string             `bson:"name" json:"name"`
	OnHand       float64            `bson:"on_hand" json:"on_hand"`
	Unit         string             `bson:"unit" json:"unit"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// Apply folds a movement into the level. Unknown movement types are ignored;
// on-hand never goes below zero.
func (l *StockLevel) Apply(m StockMovement) {
	switch m.Type {
	case MovementIn:
		l.OnHand += m.Quantity
	case MovementOut:
		l.OnHand -= m.Quantity
	case MovementAdjust:
		l.OnHand = m.Quantity
	}
	if l.OnHand < 0 {
		l.OnHand = 0
	}
	l.UpdatedAt = m.RecordedAt
}
