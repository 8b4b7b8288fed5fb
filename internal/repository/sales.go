package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brewops/cafe-service/internal/domain/model"
)

// SalesRepository provides operations on sale records and daily summaries.
type SalesRepository struct {
	sales     *mongo.Collection
	summaries *mongo.Collection
}

// NewSalesRepository creates a new sales repository.
func NewSalesRepository(db *MongoDB) *SalesRepository {
	return &SalesRepository{
		sales:     db.Sales,
		summaries: db.Summaries,
	}
}

// Create inserts a sale record.
func (r *SalesRepository) Create(ctx context.Context, s *model.Sale) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.SoldAt.IsZero() {
		s.SoldAt = time.Now()
	}
	_, err := r.sales.InsertOne(ctx, s)
	return err
}

// ListByDay returns sales recorded within the calendar day of t, oldest first.
func (r *SalesRepository) ListByDay(ctx context.Context, t time.Time) ([]model.Sale, error) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1)

	opts := options.Find().SetSort(bson.M{"sold_at": 1})
	cursor, err := r.sales.Find(ctx, bson.M{
		"sold_at": bson.M{"$gte": start, "$lt": end},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var sales []model.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// UpsertSummary stores a daily summary, replacing any existing summary for
// the same date. The unique index on date makes the daily close idempotent.
func (r *SalesRepository) UpsertSummary(ctx context.Context, s *model.DailySummary) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	_, err := r.summaries.UpdateOne(
		ctx,
		bson.M{"date": s.Date},
		bson.M{"$set": bson.M{
			"revenue":      s.Revenue,
			"cogs":         s.COGS,
			"gross_margin": s.GrossMargin,
			"sales_count":  s.SalesCount,
			"cups_sold":    s.CupsSold,
			"created_at":   s.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// FindSummary returns the stored summary for the calendar day of t, or nil.
func (r *SalesRepository) FindSummary(ctx context.Context, t time.Time) (*model.DailySummary, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	var summary model.DailySummary
	err := r.summaries.FindOne(ctx, bson.M{"date": day}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListSummaries returns the most recent daily summaries, newest first.
func (r *SalesRepository) ListSummaries(ctx context.Context, limit int) ([]model.DailySummary, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.summaries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var summaries []model.DailySummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
