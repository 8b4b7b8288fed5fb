package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service/costing"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a unique name already exists.
	ErrDuplicateName = errors.New("name already exists")
)

// CacheInvalidator is notified when the ingredient catalog changes so
// derived caches can be dropped.
type CacheInvalidator interface {
	InvalidateCache()
}

// IngredientsService manages the ingredient catalog.
type IngredientsService interface {
	Create(ctx context.Context, input dto.IngredientInput) (*model.Ingredient, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Update(ctx context.Context, id primitive.ObjectID, input dto.IngredientInput) (*model.Ingredient, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// IngredientsServiceImpl implements IngredientsService.
type IngredientsServiceImpl struct {
	repo        repository.IngredientsRepositoryInterface
	invalidator CacheInvalidator
}

// IngredientsOption configures an IngredientsService.
type IngredientsOption func(*IngredientsServiceImpl)

// WithCacheInvalidator registers a cache to drop on catalog changes.
func WithCacheInvalidator(inv CacheInvalidator) IngredientsOption {
	return func(s *IngredientsServiceImpl) {
		s.invalidator = inv
	}
}

// NewIngredientsService creates a new ingredients service.
func NewIngredientsService(repo repository.IngredientsRepositoryInterface, opts ...IngredientsOption) IngredientsService {
	s := &IngredientsServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new catalog entry. The per-cup cost is derived from the
// pricing fields at write time so reads never recompute it.
func (s *IngredientsServiceImpl) Create(ctx context.Context, input dto.IngredientInput) (*model.Ingredient, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	ing := ingredientFromInput(input)
	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	s.invalidate()
	return ing, nil
}

// Get returns one catalog entry.
func (s *IngredientsServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, ErrNotFound
	}
	return ing, nil
}

// List returns the full catalog sorted by name.
func (s *IngredientsServiceImpl) List(ctx context.Context) ([]model.Ingredient, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx)
}

// Update replaces a catalog entry's fields and recomputes its per-cup cost.
func (s *IngredientsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, input dto.IngredientInput) (*model.Ingredient, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	ing := ingredientFromInput(input)
	updated, err := s.repo.Update(ctx, id, ing)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	s.invalidate()
	return updated, nil
}

// Delete removes a catalog entry.
func (s *IngredientsServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate()
	return nil
}

func (s *IngredientsServiceImpl) invalidate() {
	if s.invalidator != nil {
		s.invalidator.InvalidateCache()
	}
}

// ingredientFromInput builds a catalog record with its derived per-cup cost.
// The stored cost doubles as the fallback when pricing data is later
// incomplete, matching CostPerUnit's fallback contract.
func ingredientFromInput(input dto.IngredientInput) *model.Ingredient {
	ing := &model.Ingredient{
		Name:         input.Name,
		UnitCost:     input.UnitCost,
		UnitQuantity: input.UnitQuantity,
		Unit:         input.Unit,
		UsagePerCup:  input.UsagePerCup,
	}
	ing.CostPerCup = costing.CostPerUnit(ing.UnitCost, ing.UnitQuantity, ing.UsagePerCup, ing.CostPerCup)
	return ing
}
