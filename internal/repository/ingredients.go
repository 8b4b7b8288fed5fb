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

// IngredientsRepository provides CRUD operations on the ingredient catalog.
type IngredientsRepository struct {
	collection *mongo.Collection
}

// NewIngredientsRepository creates a new ingredients repository.
func NewIngredientsRepository(db *MongoDB) *IngredientsRepository {
	return &IngredientsRepository{
		collection: db.Ingredients,
	}
}

// Create inserts a new ingredient and returns it with its assigned ID.
func (r *IngredientsRepository) Create(ctx context.Context, ing *model.Ingredient) error {
	if ing.ID.IsZero() {
		ing.ID = primitive.NewObjectID()
	}
	now := time.Now()
	ing.CreatedAt = now
	ing.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, ing)
	return err
}

// FindByID returns the ingredient with the given ID, or nil when absent.
func (r *IngredientsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// List returns all ingredients sorted by name.
func (r *IngredientsRepository) List(ctx context.Context) ([]model.Ingredient, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var ingredients []model.Ingredient
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Update replaces the mutable fields of an ingredient and returns the
// updated document, or nil when the ID does not exist.
func (r *IngredientsRepository) Update(ctx context.Context, id primitive.ObjectID, ing *model.Ingredient) (*model.Ingredient, error) {
	update := bson.M{
		"$set": bson.M{
			"name":          ing.Name,
			"unit_cost":     ing.UnitCost,
			"unit_quantity": ing.UnitQuantity,
			"unit":          ing.Unit,
			"usage_per_cup": ing.UsagePerCup,
			"cost_per_cup":  ing.CostPerCup,
			"updated_at":    time.Now(),
		},
	}

	var updated model.Ingredient
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateCost sets the pricing fields and the recomputed per-cup cost, used
// by the price feed import.
func (r *IngredientsRepository) UpdateCost(ctx context.Context, id primitive.ObjectID, unitCost, unitQuantity, costPerCup float64) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"unit_cost":     unitCost,
			"unit_quantity": unitQuantity,
			"cost_per_cup":  costPerCup,
			"updated_at":    time.Now(),
		}},
	)
	return err
}

// Delete removes an ingredient. Returns true when a document was deleted.
func (r *IngredientsRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// FindByName returns the ingredient with the given name, or nil when absent.
// Names are unique (enforced by index), used by the price feed matcher.
func (r *IngredientsRepository) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&ing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}
