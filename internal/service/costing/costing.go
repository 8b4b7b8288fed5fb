// Package costing implements the ingredient costing and purchase-rounding
// core: cost attributable to one cup, projected quantities for a daily
// target, display-unit conversion, and minimum-purchase rounding.
//
// Every function is a total, stateless transformation. Invalid or missing
// numeric input produces a safe fallback (zero or pass-through), never an
// error or panic, so callers can feed raw user-entered values directly.
package costing

import (
	"math"
	"strconv"
)

// CostPerUnit returns the ingredient cost attributable to one product unit,
// rounded to the nearest whole currency unit:
//
//	round((unitCost / unitQuantity) * usagePerUnit)
//
// When unitCost or unitQuantity is non-positive, or usage is negative, the
// stored fallback is returned instead (pass zero when none exists).
func CostPerUnit(unitCost, unitQuantity, usagePerUnit, fallback float64) float64 {
	if unitCost <= 0 || unitQuantity <= 0 || usagePerUnit < 0 {
		return sanitize(fallback)
	}
	cost := (unitCost / unitQuantity) * usagePerUnit
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return sanitize(fallback)
	}
	return math.Round(cost)
}

// TotalNeeded projects the quantity of an ingredient consumed to produce
// dailyTarget product units. Non-positive usage or target yields zero.
func TotalNeeded(usagePerUnit float64, dailyTarget int) float64 {
	if usagePerUnit <= 0 || dailyTarget <= 0 {
		return 0
	}
	return usagePerUnit * float64(dailyTarget)
}

// Deficit returns how much of an ingredient is still missing after counting
// on-hand stock, floored at zero.
func Deficit(required, onHand float64) float64 {
	if required <= 0 {
		return 0
	}
	if onHand < 0 {
		onHand = 0
	}
	if d := required - onHand; d > 0 {
		return d
	}
	return 0
}

// Purchase is the result of rounding a required quantity up to whole
// purchasable base units.
type Purchase struct {
	// Units is the number of base units to buy.
	Units int `json:"units"`
	// Quantity is the actual quantity bought (Units * base size), which may
	// exceed the requirement.
	Quantity float64 `json:"quantity"`
}

// RoundToPurchase rounds a required quantity up to whole base units
// (ceil(required / baseUnitSize)). A non-positive requirement yields a zero
// purchase. An invalid base unit size passes the requirement through
// unchanged with Units left at zero, signalling that no rounding applied.
func RoundToPurchase(required, baseUnitSize float64) Purchase {
	if required <= 0 {
		return Purchase{}
	}
	if baseUnitSize <= 0 {
		return Purchase{Units: 0, Quantity: required}
	}
	units := int(math.Ceil(required / baseUnitSize))
	return Purchase{
		Units:    units,
		Quantity: float64(units) * baseUnitSize,
	}
}

// FormatQuantity renders a quantity with its unit label, appending the
// larger-unit equivalent once the quantity reaches the conversion threshold:
//
//	FormatQuantity(500, "ml")  => "500 ml"
//	FormatQuantity(1500, "ml") => "1500 ml (1.5 l)"
//
// Unknown units render as-is; an empty unit falls back to "unit".
func FormatQuantity(quantity float64, unit string) string {
	return formatQuantity(quantity, unit, DefaultConversions)
}

func formatQuantity(quantity float64, unit string, table map[string]Conversion) string {
	if unit == "" {
		unit = FallbackUnit
	}
	raw := formatNumber(quantity)

	conv, ok := table[unit]
	if !ok || quantity < conv.Threshold {
		return raw + " " + unit
	}

	converted := math.Round(quantity/conv.Factor*100) / 100
	return raw + " " + unit + " (" + formatNumber(converted) + " " + conv.To + ")"
}

// formatNumber renders a float without trailing zeros (600, 1.5, 48.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sanitize guards stored fallback values against garbage: negative, NaN and
// infinite fallbacks collapse to zero so the contract of "never negative,
// never NaN" holds even for corrupt records.
func sanitize(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
