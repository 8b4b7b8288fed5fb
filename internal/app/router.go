// Package app provides router configuration.
package app

import (
	"context"

	"github.com/brewops/cafe-service/config"
	"github.com/brewops/cafe-service/internal/http"
	"github.com/brewops/cafe-service/internal/repository"
)

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	return c.db.HealthCheck(context.Background())
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the HTTP router configuration from the wired
// services and registers circuit breakers for health monitoring.
func InitializeRouter(
	dbComponents *DatabaseComponents,
	services *ServiceComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.IngredientsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_ingredients", dbComponents.IngredientsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,

		AuthService:        services.Auth,
		ShoppingService:    services.Shopping,
		IngredientsService: services.Ingredients,
		ProductsService:    services.Products,
		SalesService:       services.Sales,
		StockService:       services.Stock,
		AssetsService:      services.Assets,
		ReportsService:     services.Reports,
		PriceFeedService:   services.PriceFeed,
	}
	if dbComponents != nil {
		routerCfg.LoggingService = dbComponents.LoggingService
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
