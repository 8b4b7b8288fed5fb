package http

import (
	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/middleware"
)

var (
	_ PublicRouteGroup    = (*CafeRoutes)(nil)
	_ ProtectedRouteGroup = (*CafeRoutes)(nil)
)

// CafeRoutes handles registration of the shop's business routes: shopping
// projections, catalog, sales, stock, assets, reports and logs.
type CafeRoutes struct {
	handler            *Handler
	ingredientsHandler *IngredientsHandler
	productsHandler    *ProductsHandler
	salesHandler       *SalesHandler
	stockHandler       *StockHandler
	assetsHandler      *AssetsHandler
	reportsHandler     *ReportsHandler
	logsHandler        *LogsHandler
	priceFeedHandler   *PriceFeedHandler
}

// NewCafeRoutes creates a new CafeRoutes instance from the router configuration.
// Handlers are only created for services that are wired; routes for absent
// services are not registered.
func NewCafeRoutes(cfg *RouterConfig) *CafeRoutes {
	r := &CafeRoutes{}

	if cfg.ShoppingService != nil {
		r.handler = NewHandler(cfg.ShoppingService)
	}
	if cfg.IngredientsService != nil {
		r.ingredientsHandler = NewIngredientsHandler(cfg.IngredientsService)
	}
	if cfg.ProductsService != nil {
		r.productsHandler = NewProductsHandler(cfg.ProductsService)
	}
	if cfg.SalesService != nil {
		r.salesHandler = NewSalesHandler(cfg.SalesService)
	}
	if cfg.StockService != nil {
		r.stockHandler = NewStockHandler(cfg.StockService)
	}
	if cfg.AssetsService != nil {
		r.assetsHandler = NewAssetsHandler(cfg.AssetsService)
	}
	if cfg.ReportsService != nil {
		r.reportsHandler = NewReportsHandler(cfg.ReportsService)
	}
	if cfg.LoggingService != nil {
		r.logsHandler = NewLogsHandler(cfg.LoggingService)
	}
	if cfg.PriceFeedService != nil {
		r.priceFeedHandler = NewPriceFeedHandler(cfg.PriceFeedService)
	}

	return r
}

// RegisterPublicRoutes registers all business routes without role checks.
// Used when authentication is disabled.
func (r *CafeRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg, nil)
}

// RegisterProtectedRoutes registers business routes on a JWT-protected group.
// Catalog writes, assets, reports closing, logs and price imports require the
// owner role; baristas keep sale and stock recording.
func (r *CafeRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	ownerOnly := middleware.RequireRole(model.RoleOwner)
	r.register(protected, ownerOnly)
}

// register wires all routes. When ownerOnly is nil no role enforcement is
// applied.
func (r *CafeRoutes) register(rg *gin.RouterGroup, ownerOnly gin.HandlerFunc) {
	restricted := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if ownerOnly == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{ownerOnly}, handlers...)
	}

	if r.handler != nil {
		rg.POST("/shopping-list", r.handler.ShoppingList)
		rg.POST("/purchase-plan", r.handler.PurchasePlan)
		rg.GET("/format", r.handler.FormatQuantity)
	}

	if r.ingredientsHandler != nil {
		rg.GET("/ingredients", r.ingredientsHandler.List)
		rg.GET("/ingredients/:id", r.ingredientsHandler.Get)
		rg.POST("/ingredients", restricted(r.ingredientsHandler.Create)...)
		rg.PUT("/ingredients/:id", restricted(r.ingredientsHandler.Update)...)
		rg.DELETE("/ingredients/:id", restricted(r.ingredientsHandler.Delete)...)
	}

	if r.productsHandler != nil {
		rg.GET("/products", r.productsHandler.List)
		rg.GET("/products/:id", r.productsHandler.Get)
		rg.GET("/products/:id/cost", r.productsHandler.Cost)
		rg.POST("/products", restricted(r.productsHandler.Create)...)
		rg.PUT("/products/:id", restricted(r.productsHandler.Update)...)
		rg.DELETE("/products/:id", restricted(r.productsHandler.Delete)...)
	}

	if r.salesHandler != nil {
		rg.POST("/sales", r.salesHandler.Record)
		rg.GET("/sales", r.salesHandler.ListByDay)
	}

	if r.stockHandler != nil {
		rg.POST("/stock/movements", r.stockHandler.RecordMovement)
		rg.GET("/stock/movements/:id", r.stockHandler.Movements)
		rg.GET("/stock/levels", r.stockHandler.Levels)
		rg.GET("/stock/low", r.stockHandler.LowStock)
	}

	if r.assetsHandler != nil {
		rg.GET("/assets", restricted(r.assetsHandler.List)...)
		rg.GET("/assets/valuations", restricted(r.assetsHandler.Valuations)...)
		rg.GET("/assets/:id", restricted(r.assetsHandler.Get)...)
		rg.POST("/assets", restricted(r.assetsHandler.Create)...)
		rg.PUT("/assets/:id", restricted(r.assetsHandler.Update)...)
		rg.DELETE("/assets/:id", restricted(r.assetsHandler.Delete)...)
	}

	if r.reportsHandler != nil {
		rg.GET("/reports/daily", r.reportsHandler.Daily)
		rg.GET("/reports/history", r.reportsHandler.History)
		rg.POST("/reports/close", restricted(r.reportsHandler.CloseDay)...)
	}

	if r.logsHandler != nil {
		rg.GET("/logs", restricted(r.logsHandler.Query)...)
		rg.GET("/logs/count", restricted(r.logsHandler.Count)...)
	}

	if r.priceFeedHandler != nil {
		rg.POST("/pricefeed/import", restricted(r.priceFeedHandler.Import)...)
	}
}
