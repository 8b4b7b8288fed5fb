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

// StockRepository records stock movements and derives on-hand levels.
type StockRepository struct {
	movements   *mongo.Collection
	ingredients *mongo.Collection
}

// NewStockRepository creates a new stock repository.
func NewStockRepository(db *MongoDB) *StockRepository {
	return &StockRepository{
		movements:   db.StockMovements,
		ingredients: db.Ingredients,
	}
}

// Create inserts a stock movement.
func (r *StockRepository) Create(ctx context.Context, m *model.StockMovement) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now()
	}
	_, err := r.movements.InsertOne(ctx, m)
	return err
}

// ListByIngredient returns all movements for one ingredient, oldest first.
func (r *StockRepository) ListByIngredient(ctx context.Context, ingredientID primitive.ObjectID) ([]model.StockMovement, error) {
	opts := options.Find().SetSort(bson.M{"recorded_at": 1})
	cursor, err := r.movements.Find(ctx, bson.M{"ingredient_id": ingredientID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var movements []model.StockMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// ListAll returns every movement ordered by ingredient then time. The level
// computation folds movements in recorded order, so the sort matters.
func (r *StockRepository) ListAll(ctx context.Context) ([]model.StockMovement, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "ingredient_id", Value: 1},
		{Key: "recorded_at", Value: 1},
	})
	cursor, err := r.movements.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var movements []model.StockMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}
