// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/brewops/cafe-service/config"
	"github.com/brewops/cafe-service/internal/circuitbreaker"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB *repository.MongoDB

	IngredientsRepo repository.IngredientsRepositoryInterface
	ProductsRepo    repository.ProductsRepositoryInterface
	SalesRepo       repository.SalesRepositoryInterface
	StockRepo       repository.StockRepositoryInterface
	AssetsRepo      repository.AssetsRepositoryInterface
	UsersRepo       repository.UsersRepositoryInterface
	TokensRepo      repository.TokensRepositoryInterface

	LoggingService service.LoggingService

	IngredientsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and the logging service. Returns nil if the database is
// disabled or the connection fails; the service then runs with inline-only
// shopping calculations and no persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// The catalog and log collections sit behind circuit breakers: catalog
	// reads degrade to inline-only behavior, log writes are dropped.
	ingredientsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-ingredients",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	ingredientsRepo := repository.NewIngredientsRepository(db)
	ingredientsRepoWithCB := repository.NewIngredientsRepositoryWithCircuitBreaker(ingredientsRepo, ingredientsCB)

	return &DatabaseComponents{
		DB:                        db,
		IngredientsRepo:           ingredientsRepoWithCB,
		ProductsRepo:              repository.NewProductsRepository(db),
		SalesRepo:                 repository.NewSalesRepository(db),
		StockRepo:                 repository.NewStockRepository(db),
		AssetsRepo:                repository.NewAssetsRepository(db),
		UsersRepo:                 repository.NewUsersRepository(db),
		TokensRepo:                repository.NewTokensRepository(db),
		LoggingService:            loggingService,
		IngredientsCircuitBreaker: ingredientsCB,
		LogsCircuitBreaker:        logsCB,
	}
}
