package costing

import (
	"math"
	"sort"

	"github.com/brewops/cafe-service/internal/domain/model"
)

// Option configures a Calculator.
type Option func(*Calculator)

// Calculator derives shopping lists and purchase plans from ingredient
// records. It holds only configuration (the conversion table); every
// calculation is a pure function of its inputs.
type Calculator struct {
	conversions map[string]Conversion
}

// NewCalculator creates a Calculator with the given options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{conversions: DefaultConversions}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithConversions overrides the display-unit conversion table.
func WithConversions(table map[string]Conversion) Option {
	return func(c *Calculator) {
		if len(table) > 0 {
			c.conversions = table
		}
	}
}

// ShoppingList projects ingredient needs for a daily cup target.
//
// Ingredients with incomplete costing data (missing price, base quantity, or
// unit label) or non-positive usage are skipped; they never fail the list
// for the remaining entries. Lines are sorted by descending total cost.
// A non-positive target or empty input yields an empty list.
func (c *Calculator) ShoppingList(ingredients []model.Ingredient, dailyTarget int) model.ShoppingList {
	if dailyTarget <= 0 || len(ingredients) == 0 {
		return model.EmptyShoppingList(dailyTarget)
	}

	items := make([]model.ShoppingItem, 0, len(ingredients))
	var grandTotal float64

	for _, ing := range ingredients {
		if !ing.HasCompleteCosting() || ing.UsagePerCup <= 0 {
			continue
		}

		needed := TotalNeeded(ing.UsagePerCup, dailyTarget)
		unitCost := ing.UnitCost / ing.UnitQuantity
		totalCost := math.Round(unitCost * needed)

		items = append(items, model.ShoppingItem{
			IngredientID: ing.ID.Hex(),
			Name:         ing.Name,
			TotalNeeded:  needed,
			Unit:         ing.Unit,
			Display:      formatQuantity(needed, ing.Unit, c.conversions),
			UnitCost:     unitCost,
			TotalCost:    totalCost,
		})
		grandTotal += totalCost
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalCost > items[j].TotalCost
	})

	return model.ShoppingList{
		DailyTarget: dailyTarget,
		Items:       items,
		GrandTotal:  grandTotal,
		ItemCount:   len(items),
	}
}

// PurchasePlan nets current stock against projected needs and rounds the
// deficits up to whole purchasable base units. onHand maps ingredient ID
// (hex) to the current stock level; missing entries count as zero stock.
// Ingredients with no deficit are omitted from the plan.
func (c *Calculator) PurchasePlan(ingredients []model.Ingredient, onHand map[string]float64, dailyTarget int) model.PurchasePlan {
	list := c.ShoppingList(ingredients, dailyTarget)
	if list.ItemCount == 0 {
		return model.EmptyPurchasePlan(dailyTarget)
	}

	baseSizes := make(map[string]float64, len(ingredients))
	baseCosts := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		baseSizes[ing.ID.Hex()] = ing.UnitQuantity
		baseCosts[ing.ID.Hex()] = ing.UnitCost
	}

	items := make([]model.PurchaseItem, 0, len(list.Items))
	var grandTotal float64

	for _, line := range list.Items {
		stock := onHand[line.IngredientID]
		deficit := Deficit(line.TotalNeeded, stock)
		if deficit == 0 {
			continue
		}

		// Base size is always positive here: incomplete ingredients never
		// survive the shopping-list filter.
		purchase := RoundToPurchase(deficit, baseSizes[line.IngredientID])
		buyCost := math.Round(float64(purchase.Units) * baseCosts[line.IngredientID])

		items = append(items, model.PurchaseItem{
			ShoppingItem: line,
			OnHand:       stock,
			Deficit:      deficit,
			Units:        purchase.Units,
			BuyQuantity:  purchase.Quantity,
			BuyCost:      buyCost,
		})
		grandTotal += buyCost
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].BuyCost > items[j].BuyCost
	})

	return model.PurchasePlan{
		DailyTarget: dailyTarget,
		Items:       items,
		GrandTotal:  grandTotal,
		ItemCount:   len(items),
	}
}
