package service

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service/costing"
)

// ProductsService manages the product menu and derives per-cup COGS.
type ProductsService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Cost computes the COGS breakdown for one product from current
	// ingredient prices.
	Cost(ctx context.Context, id primitive.ObjectID) (*model.ProductCost, error)
}

// ProductsServiceImpl implements ProductsService.
type ProductsServiceImpl struct {
	repo            repository.ProductsRepositoryInterface
	ingredientsRepo repository.IngredientsRepositoryInterface
}

// NewProductsService creates a new products service.
func NewProductsService(
	repo repository.ProductsRepositoryInterface,
	ingredientsRepo repository.IngredientsRepositoryInterface,
) ProductsService {
	return &ProductsServiceImpl{
		repo:            repo,
		ingredientsRepo: ingredientsRepo,
	}
}

// Create stores a new product. Every recipe line must reference an existing
// ingredient.
func (s *ProductsServiceImpl) Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	p, err := s.productFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns one product.
func (s *ProductsServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all products sorted by name.
func (s *ProductsServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx)
}

// Update replaces a product's name, price and recipe.
func (s *ProductsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.ProductRequest) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	p, err := s.productFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a product.
func (s *ProductsServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
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
	return nil
}

// Cost computes the COGS breakdown for one product from current ingredient
// prices. Recipe lines whose ingredient has disappeared contribute zero and
// are flagged by an empty name, never an error.
func (s *ProductsServiceImpl) Cost(ctx context.Context, id primitive.ObjectID) (*model.ProductCost, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.ingredientsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	lines := make([]model.CostLine, 0, len(p.Recipe))
	var costPerCup float64

	for _, line := range p.Recipe {
		ing, err := s.ingredientsRepo.FindByID(ctx, line.IngredientID)
		if err != nil {
			return nil, err
		}

		costLine := model.CostLine{
			IngredientID: line.IngredientID.Hex(),
			UsagePerCup:  line.UsagePerCup,
		}
		if ing != nil {
			costLine.Name = ing.Name
			costLine.Cost = costing.CostPerUnit(ing.UnitCost, ing.UnitQuantity, line.UsagePerCup, ing.CostPerCup)
		}
		lines = append(lines, costLine)
		costPerCup += costLine.Cost
	}

	return &model.ProductCost{
		ProductID:  p.ID.Hex(),
		Name:       p.Name,
		Price:      p.Price,
		Lines:      lines,
		CostPerCup: math.Round(costPerCup),
		Margin:     p.Price - math.Round(costPerCup),
	}, nil
}

// productFromRequest validates recipe references and builds a product record.
func (s *ProductsServiceImpl) productFromRequest(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	recipe := make([]model.RecipeLine, 0, len(req.Recipe))
	for _, line := range req.Recipe {
		ingredientID, err := primitive.ObjectIDFromHex(line.IngredientID)
		if err != nil {
			return nil, &dto.ValidationError{Field: "recipe", Message: "invalid ingredient id: " + line.IngredientID}
		}
		if line.UsagePerCup <= 0 {
			return nil, &dto.ValidationError{Field: "recipe", Message: "usage_per_cup must be positive"}
		}
		if s.ingredientsRepo != nil {
			ing, err := s.ingredientsRepo.FindByID(ctx, ingredientID)
			if err != nil {
				return nil, err
			}
			if ing == nil {
				return nil, &dto.ValidationError{Field: "recipe", Message: "unknown ingredient: " + line.IngredientID}
			}
		}
		recipe = append(recipe, model.RecipeLine{
			IngredientID: ingredientID,
			UsagePerCup:  line.UsagePerCup,
		})
	}

	return &model.Product{
		Name:   req.Name,
		Price:  req.Price,
		Recipe: recipe,
	}, nil
}
