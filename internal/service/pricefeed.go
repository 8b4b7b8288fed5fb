package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/brewops/cafe-service/internal/client/pricefeed"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service/costing"
)

// ImportResult summarizes one price feed import run.
type ImportResult struct {
	// Fetched is the number of entries the supplier returned.
	Fetched int `json:"fetched"`
	// Updated is the number of catalog entries that received new prices.
	Updated int `json:"updated"`
	// Unmatched lists feed names with no catalog counterpart.
	Unmatched []string `json:"unmatched,omitempty"`
}

// PriceFeedService imports supplier price lists into the catalog.
type PriceFeedService interface {
	// Import fetches the supplier price list and applies it to matching
	// ingredients by name. Unknown names are reported, not errors.
	Import(ctx context.Context) (*ImportResult, error)
}

// PriceFeedServiceImpl implements PriceFeedService.
type PriceFeedServiceImpl struct {
	client          pricefeed.Client
	ingredientsRepo repository.IngredientsRepositoryInterface
	invalidator     CacheInvalidator
}

// PriceFeedOption configures a PriceFeedService.
type PriceFeedOption func(*PriceFeedServiceImpl)

// WithPriceFeedCacheInvalidator registers a cache to drop after imports.
func WithPriceFeedCacheInvalidator(inv CacheInvalidator) PriceFeedOption {
	return func(s *PriceFeedServiceImpl) {
		s.invalidator = inv
	}
}

// NewPriceFeedService creates a new price feed service.
func NewPriceFeedService(
	client pricefeed.Client,
	ingredientsRepo repository.IngredientsRepositoryInterface,
	opts ...PriceFeedOption,
) PriceFeedService {
	s := &PriceFeedServiceImpl{
		client:          client,
		ingredientsRepo: ingredientsRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Import fetches the supplier price list and applies it to the catalog.
// Entries with non-positive price or quantity are skipped; the per-cup cost
// is recomputed from the new prices on every applied update.
func (s *PriceFeedServiceImpl) Import(ctx context.Context) (*ImportResult, error) {
	if s.ingredientsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	entries, err := s.client.FetchPrices(ctx)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Fetched: len(entries)}
	for _, entry := range entries {
		if entry.UnitCost <= 0 || entry.UnitQuantity <= 0 {
			log.Warn().Str("name", entry.Name).Msg("skipping price feed entry with invalid pricing")
			continue
		}

		ing, err := s.ingredientsRepo.FindByName(ctx, entry.Name)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			result.Unmatched = append(result.Unmatched, entry.Name)
			continue
		}

		costPerCup := costing.CostPerUnit(entry.UnitCost, entry.UnitQuantity, ing.UsagePerCup, ing.CostPerCup)
		if err := s.ingredientsRepo.UpdateCost(ctx, ing.ID, entry.UnitCost, entry.UnitQuantity, costPerCup); err != nil {
			return nil, err
		}
		result.Updated++
	}

	if result.Updated > 0 && s.invalidator != nil {
		s.invalidator.InvalidateCache()
	}

	log.Info().
		Int("fetched", result.Fetched).
		Int("updated", result.Updated).
		Int("unmatched", len(result.Unmatched)).
		Msg("Price feed import completed")
	return result, nil
}
