// Package main is the entry point for the cafe-service application.
//
// @title           Cafe Service API
// @version         1.0.0
// @description     API for running a small coffee shop: ingredient costing, shopping-list projections, sales with cost-of-goods capture, stock tracking, asset depreciation and daily reports.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/brewops/cafe-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}".
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Used when JWT auth is disabled.
//
// @tag.name        Shopping
// @tag.description Shopping-list and purchase-plan projections
//
// @tag.name        Ingredients
// @tag.description Ingredient catalog management
//
// @tag.name        Products
// @tag.description Menu products, recipes and cost breakdowns
//
// @tag.name        Sales
// @tag.description Sale recording and listing
//
// @tag.name        Stock
// @tag.description Stock ledger and level reports
//
// @tag.name        Assets
// @tag.description Fixed assets and depreciation
//
// @tag.name        Reports
// @tag.description Daily summaries and closing
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/brewops/cafe-service/docs" // swagger docs

	"github.com/brewops/cafe-service/config"
	"github.com/brewops/cafe-service/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background components")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	err := server.Run()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Shutdown(shutdownCtx)

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
