package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/model"
)

// IngredientsRepositoryInterface defines ingredient catalog operations.
type IngredientsRepositoryInterface interface {
	Create(ctx context.Context, ing *model.Ingredient) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error)
	FindByName(ctx context.Context, name string) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Update(ctx context.Context, id primitive.ObjectID, ing *model.Ingredient) (*model.Ingredient, error)
	UpdateCost(ctx context.Context, id primitive.ObjectID, unitCost, unitQuantity, costPerCup float64) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ProductsRepositoryInterface defines product menu operations.
type ProductsRepositoryInterface interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// SalesRepositoryInterface defines sale record and daily summary operations.
type SalesRepositoryInterface interface {
	Create(ctx context.Context, s *model.Sale) error
	ListByDay(ctx context.Context, t time.Time) ([]model.Sale, error)
	UpsertSummary(ctx context.Context, s *model.DailySummary) error
	FindSummary(ctx context.Context, t time.Time) (*model.DailySummary, error)
	ListSummaries(ctx context.Context, limit int) ([]model.DailySummary, error)
}

// StockRepositoryInterface defines stock movement operations.
type StockRepositoryInterface interface {
	Create(ctx context.Context, m *model.StockMovement) error
	ListByIngredient(ctx context.Context, ingredientID primitive.ObjectID) ([]model.StockMovement, error)
	ListAll(ctx context.Context) ([]model.StockMovement, error)
}

// AssetsRepositoryInterface defines fixed asset operations.
type AssetsRepositoryInterface interface {
	Create(ctx context.Context, a *model.Asset) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Asset, error)
	List(ctx context.Context) ([]model.Asset, error)
	Update(ctx context.Context, id primitive.ObjectID, a *model.Asset) (*model.Asset, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// UsersRepositoryInterface defines staff account operations.
type UsersRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByIDMinimal(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.User, error)
}

// TokensRepositoryInterface defines refresh and blacklist token operations.
type TokensRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, tokenString string) (*model.Token, error)
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error
	IsBlacklisted(ctx context.Context, tokenString string) (bool, error)
	CleanupExpired(ctx context.Context) error
}

// LogsRepositoryInterface defines log persistence operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
