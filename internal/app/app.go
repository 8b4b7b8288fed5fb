// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/brewops/cafe-service/config"
	"github.com/brewops/cafe-service/internal/http"
	"github.com/brewops/cafe-service/internal/middleware"
	"github.com/brewops/cafe-service/internal/repository"
	"github.com/brewops/cafe-service/internal/scheduler"
)

// App holds the assembled application and the components that need a
// graceful shutdown.
type App struct {
	Router    *gin.Engine
	Scheduler *scheduler.Scheduler

	db       *repository.MongoDB
	services *ServiceComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	dbComponents := InitializeDatabase(cfg.Database)

	services := InitializeServices(dbComponents, cfg)

	routerComponents := InitializeRouter(dbComponents, services, cfg)

	// Request logs flow through the buffered async writer.
	if dbComponents != nil && dbComponents.LoggingService != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	a := &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		services: services,
	}
	if dbComponents != nil {
		a.db = dbComponents.DB
	}

	if cfg.Scheduler.Enabled && dbComponents != nil {
		a.Scheduler = initializeScheduler(cfg.Scheduler, dbComponents, services)
	}

	return a
}

// initializeScheduler wires the recurring jobs: nightly close, token cleanup
// and optional price feed imports.
func initializeScheduler(
	cfg config.SchedulerConfig,
	dbComponents *DatabaseComponents,
	services *ServiceComponents,
) *scheduler.Scheduler {
	schedCfg := scheduler.Config{
		DailyCloseSpec:   cfg.DailyCloseSpec,
		TokenCleanupSpec: cfg.TokenCleanupSpec,
		PriceFeedSpec:    cfg.PriceFeedSpec,
		JobTimeout:       cfg.JobTimeout,
	}

	opts := []scheduler.Option{
		scheduler.WithTokenCleanup(dbComponents.TokensRepo),
	}
	if services.PriceFeed != nil {
		opts = append(opts, scheduler.WithPriceFeed(services.PriceFeed))
	}

	return scheduler.New(schedCfg, services.Reports, opts...)
}

// Start launches background components. Safe to call with a partially
// initialized App.
func (a *App) Start() error {
	if a.Scheduler != nil {
		return a.Scheduler.Start()
	}
	return nil
}

// Shutdown stops background components and closes the database connection.
func (a *App) Shutdown(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}

	middleware.StopAsyncLogger()

	if a.services != nil && a.services.Shopping != nil {
		a.services.Shopping.Stop()
	}

	if a.db != nil {
		if err := a.db.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
