package service

import (
	"context"
	"errors"
	"time"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/metrics"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service/costing"
)

// ErrRepositoryNotConfigured is returned when an operation needs a database
// and none was configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ShoppingService derives shopping lists and purchase plans.
type ShoppingService interface {
	// ShoppingList projects ingredient needs for a daily target. When the
	// request carries inline ingredients those are used; otherwise the
	// stored catalog is loaded.
	ShoppingList(ctx context.Context, req dto.ShoppingListRequest) (model.ShoppingList, error)
	// PurchasePlan nets current stock against needs and rounds deficits up
	// to whole purchasable units.
	PurchasePlan(ctx context.Context, req dto.PurchasePlanRequest) (model.PurchasePlan, error)
	// InvalidateCache drops cached lists after catalog changes.
	InvalidateCache()
	// Stop releases background resources.
	Stop()
}

// ShoppingServiceImpl implements ShoppingService.
type ShoppingServiceImpl struct {
	calculator      *costing.Calculator
	ingredientsRepo repository.IngredientsRepositoryInterface
	stockRepo       repository.StockRepositoryInterface
	cache           *listCache
}

// ShoppingOption configures a ShoppingService.
type ShoppingOption func(*ShoppingServiceImpl)

// WithShoppingCache overrides the cache capacity and TTL.
func WithShoppingCache(capacity int, ttl time.Duration) ShoppingOption {
	return func(s *ShoppingServiceImpl) {
		if s.cache != nil {
			s.cache.Stop()
		}
		s.cache = newListCache(capacity, ttl)
	}
}

// WithCalculator overrides the costing calculator, e.g. with a custom
// conversion table.
func WithCalculator(c *costing.Calculator) ShoppingOption {
	return func(s *ShoppingServiceImpl) {
		if c != nil {
			s.calculator = c
		}
	}
}

// NewShoppingService creates a new shopping service. Both repositories may be
// nil; inline payloads keep the costing endpoints usable without a database.
func NewShoppingService(
	ingredientsRepo repository.IngredientsRepositoryInterface,
	stockRepo repository.StockRepositoryInterface,
	opts ...ShoppingOption,
) ShoppingService {
	s := &ShoppingServiceImpl{
		calculator:      costing.NewCalculator(),
		ingredientsRepo: ingredientsRepo,
		stockRepo:       stockRepo,
		cache:           newListCache(64, 30*time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShoppingList projects ingredient needs for a daily target.
func (s *ShoppingServiceImpl) ShoppingList(ctx context.Context, req dto.ShoppingListRequest) (model.ShoppingList, error) {
	if err := req.Validate(); err != nil {
		return model.ShoppingList{}, err
	}

	start := time.Now()
	defer func() {
		metrics.RecordShoppingListDuration(time.Since(start))
	}()

	if len(req.Ingredients) > 0 {
		list := s.calculator.ShoppingList(inlineIngredients(req.Ingredients), req.DailyTarget)
		metrics.RecordShoppingList(req.DailyTarget, list.ItemCount)
		return list, nil
	}

	// Catalog-backed lists are cacheable per target.
	if cached, ok := s.cache.Get(req.DailyTarget); ok {
		return cached, nil
	}

	ingredients, err := s.loadCatalog(ctx)
	if err != nil {
		return model.ShoppingList{}, err
	}

	list := s.calculator.ShoppingList(ingredients, req.DailyTarget)
	s.cache.Set(req.DailyTarget, list)
	metrics.RecordShoppingList(req.DailyTarget, list.ItemCount)
	return list, nil
}

// PurchasePlan nets stock against needs and rounds deficits to whole units.
func (s *ShoppingServiceImpl) PurchasePlan(ctx context.Context, req dto.PurchasePlanRequest) (model.PurchasePlan, error) {
	if err := req.Validate(); err != nil {
		return model.PurchasePlan{}, err
	}

	ingredients, err := s.loadCatalog(ctx)
	if err != nil {
		return model.PurchasePlan{}, err
	}

	onHand := req.OnHand
	if onHand == nil {
		onHand, err = s.stockLevels(ctx)
		if err != nil {
			return model.PurchasePlan{}, err
		}
	}

	return s.calculator.PurchasePlan(ingredients, onHand, req.DailyTarget), nil
}

// InvalidateCache drops cached lists after catalog changes.
func (s *ShoppingServiceImpl) InvalidateCache() {
	s.cache.Clear()
}

// Stop releases background resources.
func (s *ShoppingServiceImpl) Stop() {
	s.cache.Stop()
}

func (s *ShoppingServiceImpl) loadCatalog(ctx context.Context) ([]model.Ingredient, error) {
	if s.ingredientsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ingredientsRepo.List(ctx)
}

// stockLevels folds the movement ledger into an on-hand map keyed by
// ingredient ID. Missing ledgers count as zero stock.
func (s *ShoppingServiceImpl) stockLevels(ctx context.Context) (map[string]float64, error) {
	if s.stockRepo == nil {
		return map[string]float64{}, nil
	}

	movements, err := s.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	levels := make(map[string]*model.StockLevel)
	for _, m := range movements {
		key := m.IngredientID.Hex()
		level, ok := levels[key]
		if !ok {
			level = &model.StockLevel{IngredientID: m.IngredientID}
			levels[key] = level
		}
		level.Apply(m)
	}

	onHand := make(map[string]float64, len(levels))
	for key, level := range levels {
		onHand[key] = level.OnHand
	}
	return onHand, nil
}

// inlineIngredients converts request payload entries into catalog records.
// Inline entries have no stored ID; lines derived from them carry an empty
// ingredient_id.
func inlineIngredients(inputs []dto.IngredientInput) []model.Ingredient {
	ingredients := make([]model.Ingredient, len(inputs))
	for i, in := range inputs {
		ingredients[i] = model.Ingredient{
			Name:         in.Name,
			UnitCost:     in.UnitCost,
			UnitQuantity: in.UnitQuantity,
			Unit:         in.Unit,
			UsagePerCup:  in.UsagePerCup,
		}
	}
	return ingredients
}
