package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset is a fixed asset (espresso machine, grinder, furniture) depreciated
// straight-line over its useful life.
type Asset struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	// Cost is the acquisition cost in whole rupiah.
	Cost float64 `bson:"cost" json:"cost"`
	// SalvageValue is the expected residual value at end of life.
	SalvageValue float64 `bson:"salvage_value" json:"salvage_value"`
	// LifeMonths is the useful life in months.
	LifeMonths int       `bson:"life_months" json:"life_months"`
	AcquiredAt time.Time `bson:"acquired_at" json:"acquired_at"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// MonthlyDepreciation returns the straight-line depreciation per month,
// zero for invalid cost or life.
func (a Asset) MonthlyDepreciation() float64 {
	if a.LifeMonths <= 0 || a.Cost <= 0 {
		return 0
	}
	base := a.Cost - a.SalvageValue
	if base <= 0 {
		return 0
	}
	return base / float64(a.LifeMonths)
}

// BookValueAt returns the depreciated book value at the given time, never
// below the salvage value and never above cost.
func (a Asset) BookValueAt(t time.Time) float64 {
	if t.Before(a.AcquiredAt) {
		return a.Cost
	}
	monthly := a.MonthlyDepreciation()
	if monthly == 0 {
		return a.Cost
	}

	months := monthsBetween(a.AcquiredAt, t)
	if months > a.LifeMonths {
		months = a.LifeMonths
	}

	value := a.Cost - monthly*float64(months)
	if value < a.SalvageValue {
		return a.SalvageValue
	}
	return value
}

// monthsBetween counts whole calendar months elapsed from a to b.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
