// Package dto defines Data Transfer Objects for HTTP request and response
// handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

// IngredientInput carries raw ingredient fields as entered by a user.
// Used both for inline shopping-list calculations and ingredient CRUD.
//
// @Description Ingredient pricing and usage data
// @Example {"name": "Fresh milk", "unit_cost": 48500, "unit_quantity": 1000, "unit": "ml", "usage_per_cup": 10}
type IngredientInput struct {
	// Name of the ingredient.
	Name string `json:"name" binding:"required" example:"Fresh milk"`
	// UnitCost is the price of one base unit in whole rupiah.
	UnitCost float64 `json:"unit_cost" example:"48500"`
	// UnitQuantity is the quantity one base unit contains.
	UnitQuantity float64 `json:"unit_quantity" example:"1000"`
	// Unit is the measure label (ml, g, tsp, tbsp, cup).
	Unit string `json:"unit" example:"ml"`
	// UsagePerCup is the quantity consumed per cup.
	UsagePerCup float64 `json:"usage_per_cup" example:"10"`
} // @name IngredientInput

// ShoppingListRequest represents the JSON request body for the
// shopping-list endpoint. Ingredients is optional; when omitted, the stored
// ingredient catalog is used.
//
// @Description Request to project a shopping list for a daily cup target
// @Example {"daily_target": 60}
type ShoppingListRequest struct {
	// DailyTarget is the number of cups planned for the day. Must be > 0.
	DailyTarget int `json:"daily_target" binding:"required,gt=0" example:"60" minimum:"1"`
	// Ingredients optionally overrides the stored catalog.
	Ingredients []IngredientInput `json:"ingredients,omitempty"`
} // @name ShoppingListRequest

// PurchasePlanRequest represents the JSON request body for the
// purchase-plan endpoint. Stock levels come from the stock ledger unless
// OnHand overrides them per ingredient ID.
//
// @Description Request to compute a stock-aware purchase plan
// @Example {"daily_target": 60}
type PurchasePlanRequest struct {
	// DailyTarget is the number of cups planned for the day. Must be > 0.
	DailyTarget int `json:"daily_target" binding:"required,gt=0" example:"60" minimum:"1"`
	// OnHand optionally overrides stored stock levels, keyed by ingredient ID.
	OnHand map[string]float64 `json:"on_hand,omitempty"`
} // @name PurchasePlanRequest

// RecipeLineInput is one (ingredient, usage) pair of a product recipe.
type RecipeLineInput struct {
	IngredientID string  `json:"ingredient_id" binding:"required"`
	UsagePerCup  float64 `json:"usage_per_cup" binding:"required,gt=0"`
} // @name RecipeLineInput

// ProductRequest represents the JSON request body for product create/update.
//
// @Description Product with menu price and recipe
type ProductRequest struct {
	Name string `json:"name" binding:"required" example:"Cafe latte"`
	// Price is the menu price per cup in whole rupiah.
	Price  float64           `json:"price" binding:"required,gt=0" example:"25000"`
	Recipe []RecipeLineInput `json:"recipe" binding:"required,min=1"`
} // @name ProductRequest

// RecordSaleRequest represents the JSON request body for recording a sale.
//
// @Description Request to record a sale. Supports idempotency via the Idempotency-Key header.
// @Example {"product_id": "665f1c2e8b3e4a0c9d1e2f30", "quantity": 2}
type RecordSaleRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0" example:"2"`
	// UnitPrice optionally overrides the menu price (discounts, promos).
	UnitPrice float64 `json:"unit_price,omitempty"`
} // @name RecordSaleRequest

// StockMovementRequest represents the JSON request body for a stock entry.
//
// @Description Stock ledger entry: in (received), out (consumed), or adjust (counted level)
// @Example {"ingredient_id": "665f1c2e8b3e4a0c9d1e2f30", "type": "in", "quantity": 1000}
type StockMovementRequest struct {
	IngredientID string `json:"ingredient_id" binding:"required"`
	// Type is one of "in", "out", "adjust".
	Type     string  `json:"type" binding:"required,oneof=in out adjust"`
	Quantity float64 `json:"quantity" binding:"required"`
	Note     string  `json:"note,omitempty"`
} // @name StockMovementRequest

// AssetRequest represents the JSON request body for asset create/update.
//
// @Description Fixed asset with straight-line depreciation parameters
type AssetRequest struct {
	Name string `json:"name" binding:"required" example:"Espresso machine"`
	// Cost is the acquisition cost in whole rupiah.
	Cost         float64 `json:"cost" binding:"required,gt=0" example:"35000000"`
	SalvageValue float64 `json:"salvage_value,omitempty"`
	// LifeMonths is the useful life in months.
	LifeMonths int `json:"life_months" binding:"required,gt=0" example:"60"`
	// AcquiredAt is the acquisition date (RFC 3339).
	AcquiredAt string `json:"acquired_at" binding:"required" example:"2025-01-15T00:00:00Z"`
} // @name AssetRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidDailyTarget is returned when daily_target is invalid.
	ErrInvalidDailyTarget = &ValidationError{
		Field:   "daily_target",
		Message: "must be a positive integer",
	}
)

// Validate performs custom validation on the shopping-list request.
func (r *ShoppingListRequest) Validate() error {
	if r.DailyTarget <= 0 {
		return ErrInvalidDailyTarget
	}
	return nil
}

// Validate performs custom validation on the purchase-plan request.
func (r *PurchasePlanRequest) Validate() error {
	if r.DailyTarget <= 0 {
		return ErrInvalidDailyTarget
	}
	return nil
}
