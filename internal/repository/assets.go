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

// AssetsRepository provides CRUD operations on fixed assets.
type AssetsRepository struct {
	collection *mongo.Collection
}

// NewAssetsRepository creates a new assets repository.
func NewAssetsRepository(db *MongoDB) *AssetsRepository {
	return &AssetsRepository{
		collection: db.Assets,
	}
}

// Create inserts a new asset and returns it with its assigned ID.
func (r *AssetsRepository) Create(ctx context.Context, a *model.Asset) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, a)
	return err
}

// FindByID returns the asset with the given ID, or nil when absent.
func (r *AssetsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Asset, error) {
	var a model.Asset
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all assets sorted by acquisition date.
func (r *AssetsRepository) List(ctx context.Context) ([]model.Asset, error) {
	opts := options.Find().SetSort(bson.M{"acquired_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var assets []model.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// Update replaces an asset's mutable fields, returning the updated document
// or nil when the ID does not exist.
func (r *AssetsRepository) Update(ctx context.Context, id primitive.ObjectID, a *model.Asset) (*model.Asset, error) {
	update := bson.M{
		"$set": bson.M{
			"name":          a.Name,
			"cost":          a.Cost,
			"salvage_value": a.SalvageValue,
			"life_months":   a.LifeMonths,
			"acquired_at":   a.AcquiredAt,
			"updated_at":    time.Now(),
		},
	}

	var updated model.Asset
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

// Delete removes an asset. Returns true when a document was deleted.
func (r *AssetsRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
