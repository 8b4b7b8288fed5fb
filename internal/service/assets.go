package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/repository"
)

// AssetValuation is an asset with its derived depreciation figures.
type AssetValuation struct {
	model.Asset
	// MonthlyDepreciation is the straight-line charge per month.
	MonthlyDepreciation float64 `json:"monthly_depreciation"`
	// BookValue is the depreciated value as of the valuation time.
	BookValue float64 `json:"book_value"`
}

// AssetsService manages fixed assets and their depreciation.
type AssetsService interface {
	Create(ctx context.Context, req dto.AssetRequest) (*model.Asset, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Asset, error)
	List(ctx context.Context) ([]model.Asset, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.AssetRequest) (*model.Asset, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Valuations returns all assets with monthly depreciation and book value
	// as of t.
	Valuations(ctx context.Context, t time.Time) ([]AssetValuation, error)
}

// AssetsServiceImpl implements AssetsService.
type AssetsServiceImpl struct {
	repo repository.AssetsRepositoryInterface
}

// NewAssetsService creates a new assets service.
func NewAssetsService(repo repository.AssetsRepositoryInterface) AssetsService {
	return &AssetsServiceImpl{repo: repo}
}

// Create stores a new asset.
func (s *AssetsServiceImpl) Create(ctx context.Context, req dto.AssetRequest) (*model.Asset, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	asset, err := assetFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// Get returns one asset.
func (s *AssetsServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Asset, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, ErrNotFound
	}
	return asset, nil
}

// List returns all assets sorted by acquisition date.
func (s *AssetsServiceImpl) List(ctx context.Context) ([]model.Asset, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx)
}

// Update replaces an asset's fields.
func (s *AssetsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req dto.AssetRequest) (*model.Asset, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	asset, err := assetFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, asset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes an asset.
func (s *AssetsServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
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

// Valuations returns all assets with their depreciation figures as of t.
func (s *AssetsServiceImpl) Valuations(ctx context.Context, t time.Time) ([]AssetValuation, error) {
	assets, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	valuations := make([]AssetValuation, len(assets))
	for i, asset := range assets {
		valuations[i] = AssetValuation{
			Asset:               asset,
			MonthlyDepreciation: asset.MonthlyDepreciation(),
			BookValue:           asset.BookValueAt(t),
		}
	}
	return valuations, nil
}

func assetFromRequest(req dto.AssetRequest) (*model.Asset, error) {
	acquiredAt, err := time.Parse(time.RFC3339, req.AcquiredAt)
	if err != nil {
		return nil, &dto.ValidationError{Field: "acquired_at", Message: "must be an RFC 3339 timestamp"}
	}
	if req.SalvageValue < 0 || req.SalvageValue >= req.Cost {
		return nil, &dto.ValidationError{Field: "salvage_value", Message: "must be non-negative and below cost"}
	}

	return &model.Asset{
		Name:         req.Name,
		Cost:         req.Cost,
		SalvageValue: req.SalvageValue,
		LifeMonths:   req.LifeMonths,
		AcquiredAt:   acquiredAt,
	}, nil
}
