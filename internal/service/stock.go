package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service/costing"
)

// LowStockItem is an ingredient whose on-hand level does not cover the
// projected needs for a daily target.
type LowStockItem struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	OnHand       float64 `json:"on_hand"`
	Needed       float64 `json:"needed"`
	Deficit      float64 `json:"deficit"`
}

// StockService maintains the stock movement ledger.
type StockService interface {
	// RecordMovement appends one ledger entry.
	RecordMovement(ctx context.Context, req dto.StockMovementRequest) (*model.StockMovement, error)
	// Movements returns the ledger for one ingredient, oldest first.
	Movements(ctx context.Context, ingredientID primitive.ObjectID) ([]model.StockMovement, error)
	// Levels folds the full ledger into per-ingredient on-hand levels.
	Levels(ctx context.Context) ([]model.StockLevel, error)
	// LowStock lists ingredients whose level falls short of one day's needs.
	LowStock(ctx context.Context, dailyTarget int) ([]LowStockItem, error)
}

// StockServiceImpl implements StockService.
type StockServiceImpl struct {
	repo            repository.StockRepositoryInterface
	ingredientsRepo repository.IngredientsRepositoryInterface
}

// NewStockService creates a new stock service.
func NewStockService(
	repo repository.StockRepositoryInterface,
	ingredientsRepo repository.IngredientsRepositoryInterface,
) StockService {
	return &StockServiceImpl{
		repo:            repo,
		ingredientsRepo: ingredientsRepo,
	}
}

// RecordMovement appends one ledger entry after validating the ingredient.
func (s *StockServiceImpl) RecordMovement(ctx context.Context, req dto.StockMovementRequest) (*model.StockMovement, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	ingredientID, err := primitive.ObjectIDFromHex(req.IngredientID)
	if err != nil {
		return nil, &dto.ValidationError{Field: "ingredient_id", Message: "invalid ingredient id"}
	}
	if req.Type != model.MovementIn && req.Type != model.MovementOut && req.Type != model.MovementAdjust {
		return nil, &dto.ValidationError{Field: "type", Message: "type must be in, out or adjust"}
	}
	if req.Quantity < 0 {
		return nil, &dto.ValidationError{Field: "quantity", Message: "quantity must not be negative"}
	}

	if s.ingredientsRepo != nil {
		ing, err := s.ingredientsRepo.FindByID(ctx, ingredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, ErrNotFound
		}
	}

	movement := &model.StockMovement{
		IngredientID: ingredientID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		Note:         req.Note,
	}
	if err := s.repo.Create(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// Movements returns the ledger for one ingredient.
func (s *StockServiceImpl) Movements(ctx context.Context, ingredientID primitive.ObjectID) ([]model.StockMovement, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.ListByIngredient(ctx, ingredientID)
}

// Levels folds the full ledger into per-ingredient on-hand levels, labeled
// with catalog names and units where available.
func (s *StockServiceImpl) Levels(ctx context.Context) ([]model.StockLevel, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	movements, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byIngredient := make(map[primitive.ObjectID]*model.StockLevel)
	order := make([]primitive.ObjectID, 0)
	for _, m := range movements {
		level, ok := byIngredient[m.IngredientID]
		if !ok {
			level = &model.StockLevel{IngredientID: m.IngredientID}
			byIngredient[m.IngredientID] = level
			order = append(order, m.IngredientID)
		}
		level.Apply(m)
	}

	levels := make([]model.StockLevel, 0, len(order))
	for _, id := range order {
		level := byIngredient[id]
		if s.ingredientsRepo != nil {
			ing, err := s.ingredientsRepo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if ing != nil {
				level.Name = ing.Name
				level.Unit = ing.Unit
			}
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

// LowStock lists ingredients whose on-hand level does not cover the
// projected needs for the daily target. Ingredients without ledger entries
// count as zero stock.
func (s *StockServiceImpl) LowStock(ctx context.Context, dailyTarget int) ([]LowStockItem, error) {
	if dailyTarget <= 0 {
		return nil, dto.ErrInvalidDailyTarget
	}
	if s.ingredientsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	ingredients, err := s.ingredientsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	levels, err := s.Levels(ctx)
	if err != nil {
		return nil, err
	}
	onHand := make(map[primitive.ObjectID]float64, len(levels))
	for _, level := range levels {
		onHand[level.IngredientID] = level.OnHand
	}

	items := make([]LowStockItem, 0)
	for _, ing := range ingredients {
		if ing.UsagePerCup <= 0 {
			continue
		}
		needed := costing.TotalNeeded(ing.UsagePerCup, dailyTarget)
		stock := onHand[ing.ID]
		deficit := costing.Deficit(needed, stock)
		if deficit == 0 {
			continue
		}
		items = append(items, LowStockItem{
			IngredientID: ing.ID.Hex(),
			Name:         ing.Name,
			Unit:         ing.Unit,
			OnHand:       stock,
			Needed:       needed,
			Deficit:      deficit,
		})
	}
	return items, nil
}
