// Package app provides service initialization.
package app

import (
	"github.com/brewops/cafe-service/config"
	"github.com/brewops/cafe-service/internal/client/pricefeed"
	"github.com/brewops/cafe-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Shopping    service.ShoppingService
	Ingredients service.IngredientsService
	Products    service.ProductsService
	Sales       service.SalesService
	Stock       service.StockService
	Assets      service.AssetsService
	Reports     service.ReportsService
	Auth        service.AuthService
	PriceFeed   service.PriceFeedService
}

// InitializeServices wires the business services on top of the repositories.
// With a nil dbComponents only the shopping service is created; it serves
// inline-payload calculations without a catalog.
func InitializeServices(dbComponents *DatabaseComponents, cfg config.Config) *ServiceComponents {
	var shoppingOpts []service.ShoppingOption
	if cfg.Cache.Size > 0 {
		shoppingOpts = append(shoppingOpts, service.WithShoppingCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	if dbComponents == nil {
		return &ServiceComponents{
			Shopping: service.NewShoppingService(nil, nil, shoppingOpts...),
		}
	}

	shopping := service.NewShoppingService(
		dbComponents.IngredientsRepo,
		dbComponents.StockRepo,
		shoppingOpts...,
	)

	// Catalog writes invalidate cached shopping lists.
	ingredients := service.NewIngredientsService(
		dbComponents.IngredientsRepo,
		service.WithCacheInvalidator(shopping),
	)

	products := service.NewProductsService(dbComponents.ProductsRepo, dbComponents.IngredientsRepo)

	components := &ServiceComponents{
		Shopping:    shopping,
		Ingredients: ingredients,
		Products:    products,
		Sales:       service.NewSalesService(dbComponents.SalesRepo, products, dbComponents.StockRepo),
		Stock:       service.NewStockService(dbComponents.StockRepo, dbComponents.IngredientsRepo),
		Assets:      service.NewAssetsService(dbComponents.AssetsRepo),
		Reports:     service.NewReportsService(dbComponents.SalesRepo),
	}

	if cfg.Auth.Enabled {
		components.Auth = service.NewAuthService(
			dbComponents.UsersRepo,
			dbComponents.TokensRepo,
			cfg.Auth,
		)
	}

	if cfg.PriceFeed.Enabled && cfg.PriceFeed.BaseURL != "" {
		client := pricefeed.NewHTTPClient(pricefeed.Config{
			BaseURL:    cfg.PriceFeed.BaseURL,
			APIKey:     cfg.PriceFeed.APIKey,
			Timeout:    cfg.PriceFeed.Timeout,
			RetryCount: cfg.PriceFeed.RetryCount,
		})
		components.PriceFeed = service.NewPriceFeedService(
			client,
			dbComponents.IngredientsRepo,
			service.WithPriceFeedCacheInvalidator(shopping),
		)
	}

	return components
}
