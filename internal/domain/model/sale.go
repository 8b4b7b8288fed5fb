package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale records one sold order line.
type Sale struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID   primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName string             `bson:"product_name" json:"product_name"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	// UnitPrice is the price charged per cup; it may differ from the menu
	// price (discounts, promos).
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
	// Total is Quantity * UnitPrice in whole rupiah.
	Total float64 `bson:"total" json:"total"`
	// UnitCost is the product's per-cup COGS captured at sale time, so
	// later ingredient price changes don't rewrite history.
	UnitCost float64   `bson:"unit_cost" json:"unit_cost"`
	SoldAt   time.Time `bson:"sold_at" json:"sold_at"`
}

// DailySummary aggregates one day of sales for accounting.
type DailySummary struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Date is the day being summarized, truncated to midnight local time.
	Date time.Time `bson:"date" json:"date"`
	// Revenue is the sum of sale totals.
	Revenue float64 `bson:"revenue" json:"revenue"`
	// COGS is the sum of quantity * captured unit cost.
	COGS float64 `bson:"cogs" json:"cogs"`
	// GrossMargin is Revenue - COGS.
	GrossMargin float64 `bson:"gross_margin" json:"gross_margin"`
	// SalesCount is the number of sale records.
	SalesCount int `bson:"sales_count" json:"sales_count"`
	// CupsSold is the total quantity across all sales.
	CupsSold  int       `bson:"cups_sold" json:"cups_sold"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
