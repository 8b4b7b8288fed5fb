package model

// ShoppingItem is one derived line of a shopping list. It is never stored;
// it is recomputed from the ingredient and the daily target on every pass.
type ShoppingItem struct {
	IngredientID string `json:"ingredient_id,omitempty"`
	// Name of the ingredient this line was derived from.
	Name string `json:"name"`
	// TotalNeeded is the projected quantity for the daily target, in Unit.
	TotalNeeded float64 `json:"total_needed" example:"600"`
	// Unit is the measure label of TotalNeeded.
	Unit string `json:"unit" example:"ml"`
	// Display renders TotalNeeded with its larger-unit equivalent when it
	// crosses a conversion threshold, e.g. "1500 ml (1.5 l)".
	Display string `json:"display"`
	// UnitCost is the cost per single measure (rupiah per ml/g/...), left
	// unrounded so line totals stay exact.
	UnitCost float64 `json:"unit_cost" example:"48.5"`
	// TotalCost is the line total in whole rupiah.
	TotalCost float64 `json:"total_cost" example:"29100"`
}

// ShoppingList is the complete derived shopping list for a daily target,
// sorted by descending line total.
type ShoppingList struct {
	// DailyTarget is the number of cups the list was projected for.
	DailyTarget int `json:"daily_target" example:"60"`
	// Items holds one line per ingredient with complete costing data.
	Items []ShoppingItem `json:"items"`
	// GrandTotal is the sum of all line totals in whole rupiah.
	GrandTotal float64 `json:"grand_total" example:"29100"`
	// ItemCount is len(Items), surfaced for API consumers.
	ItemCount int `json:"item_count"`
}

// EmptyShoppingList returns the zero-value list for the given target.
// Non-positive targets and empty inputs produce this, never an error.
func EmptyShoppingList(dailyTarget int) ShoppingList {
	return ShoppingList{
		DailyTarget: dailyTarget,
		Items:       []ShoppingItem{},
		GrandTotal:  0,
		ItemCount:   0,
	}
}

// PurchaseItem extends a shopping line with stock netting and
// minimum-purchase rounding.
type PurchaseItem struct {
	ShoppingItem
	// OnHand is the current stock counted against the requirement.
	OnHand float64 `json:"on_hand"`
	// Deficit is the missing quantity after netting stock, floored at zero.
	Deficit float64 `json:"deficit"`
	// Units is the number of base units to buy (ceil of deficit over the
	// ingredient's base quantity).
	Units int `json:"units"`
	// BuyQuantity is the actual quantity bought, Units * base quantity.
	BuyQuantity float64 `json:"buy_quantity"`
	// BuyCost is Units * unit cost of the base unit, whole rupiah.
	BuyCost float64 `json:"buy_cost"`
}

// PurchasePlan is the stock-aware purchase projection for a daily target.
type PurchasePlan struct {
	DailyTarget int            `json:"daily_target"`
	Items       []PurchaseItem `json:"items"`
	GrandTotal  float64        `json:"grand_total"`
	ItemCount   int            `json:"item_count"`
}

// EmptyPurchasePlan returns the zero-value plan for the given target.
func EmptyPurchasePlan(dailyTarget int) PurchasePlan {
	return PurchasePlan{
		DailyTarget: dailyTarget,
		Items:       []PurchaseItem{},
	}
}
