package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeLine pairs an ingredient with the quantity one cup of the product
// consumes. Order is preserved as entered.
type RecipeLine struct {
	IngredientID primitive.ObjectID `bson:"ingredient_id" json:"ingredient_id"`
	// UsagePerCup overrides the ingredient's own usage for this product.
	UsagePerCup float64 `bson:"usage_per_cup" json:"usage_per_cup"`
}

// Product is a sellable menu item with a recipe.
type Product struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	// Price is the menu price per cup in whole rupiah.
	Price     float64      `bson:"price" json:"price"`
	Recipe    []RecipeLine `bson:"recipe" json:"recipe"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}

// CostLine is one ingredient's contribution to a product's per-cup cost.
type CostLine struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	UsagePerCup  float64 `json:"usage_per_cup"`
	// Cost is the rounded per-cup cost attributable to this ingredient.
	Cost float64 `json:"cost"`
}

// ProductCost is the derived COGS breakdown for one product.
type ProductCost struct {
	ProductID string     `json:"product_id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Lines     []CostLine `json:"lines"`
	// CostPerCup is the summed ingredient cost for one cup.
	CostPerCup float64 `json:"cost_per_cup"`
	// Margin is Price - CostPerCup; negative when the product sells at a loss.
	Margin float64 `json:"margin"`
}
