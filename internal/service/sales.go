package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/metrics"
	"github.com/brewops/cafe-service/internal/repository"
)

// SalesService records sales and reads them back per day.
type SalesService interface {
	// RecordSale stores a sale, capturing the product's per-cup COGS at
	// sale time and writing stock consumption to the movement ledger.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*model.Sale, error)
	// ListByDay returns the sales of the calendar day of t, oldest first.
	ListByDay(ctx context.Context, t time.Time) ([]model.Sale, error)
}

// SalesServiceImpl implements SalesService.
type SalesServiceImpl struct {
	salesRepo repository.SalesRepositoryInterface
	products  ProductsService
	stockRepo repository.StockRepositoryInterface
}

// NewSalesService creates a new sales service. stockRepo may be nil; sales
// are then recorded without ledger entries.
func NewSalesService(
	salesRepo repository.SalesRepositoryInterface,
	products ProductsService,
	stockRepo repository.StockRepositoryInterface,
) SalesService {
	return &SalesServiceImpl{
		salesRepo: salesRepo,
		products:  products,
		stockRepo: stockRepo,
	}
}

// RecordSale stores a sale with its COGS captured at sale time.
func (s *SalesServiceImpl) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*model.Sale, error) {
	if s.salesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, &dto.ValidationError{Field: "product_id", Message: "invalid product id"}
	}

	cost, err := s.products.Cost(ctx, productID)
	if err != nil {
		return nil, err
	}

	unitPrice := req.UnitPrice
	if unitPrice <= 0 {
		unitPrice = cost.Price
	}

	sale := &model.Sale{
		ProductID:   productID,
		ProductName: cost.Name,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		Total:       unitPrice * float64(req.Quantity),
		UnitCost:    cost.CostPerCup,
	}
	if err := s.salesRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.consumeStock(ctx, productID, sale)
	metrics.RecordSale(cost.Name, req.Quantity, sale.Total)
	return sale, nil
}

// ListByDay returns the sales of the calendar day of t.
func (s *SalesServiceImpl) ListByDay(ctx context.Context, t time.Time) ([]model.Sale, error) {
	if s.salesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.salesRepo.ListByDay(ctx, t)
}

// consumeStock writes one "out" movement per recipe line. Ledger failures
// are logged, not returned; the sale is already committed.
func (s *SalesServiceImpl) consumeStock(ctx context.Context, productID primitive.ObjectID, sale *model.Sale) {
	if s.stockRepo == nil {
		return
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID.Hex()).Msg("failed to load recipe for stock consumption")
		return
	}

	for _, line := range product.Recipe {
		movement := &model.StockMovement{
			IngredientID: line.IngredientID,
			Type:         model.MovementOut,
			Quantity:     line.UsagePerCup * float64(sale.Quantity),
			Note:         "sale " + sale.ID.Hex(),
			RecordedAt:   sale.SoldAt,
		}
		if err := s.stockRepo.Create(ctx, movement); err != nil {
			log.Warn().Err(err).
				Str("ingredient_id", line.IngredientID.Hex()).
				Msg("failed to record stock consumption")
		}
	}
}
