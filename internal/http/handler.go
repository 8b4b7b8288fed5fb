// Package http provides the Gin handlers and routing for the cafe service API.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/middleware"
	"github.com/brewops/cafe-service/internal/service"
	"github.com/brewops/cafe-service/internal/service/costing"
)

// Handler provides HTTP handlers for shopping-list and purchase-plan routes.
type Handler struct {
	shoppingService service.ShoppingService
}

// NewHandler creates a new Handler instance.
func NewHandler(shoppingService service.ShoppingService) *Handler {
	return &Handler{shoppingService: shoppingService}
}

// auditLog emits an audit entry when a logging service was injected into the context.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// auditLogError emits an error audit entry when a logging service was injected.
func auditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLogError(ls, c, actionType, message, err, fields)
		}
	}
}

// dayFromQuery parses the optional ?date=YYYY-MM-DD query parameter,
// defaulting to today.
func dayFromQuery(c *gin.Context) (time.Time, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", dateStr, time.Local)
}

// limitFromQuery parses the optional ?limit= query parameter.
func limitFromQuery(c *gin.Context) int {
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			return l
		}
	}
	return 0
}

// ShoppingList handles POST /api/shopping-list requests.
//
// @Summary      Project a shopping list
// @Description  Computes the ingredients, quantities and estimated spend needed to hit a daily cup target. Ingredients may be supplied inline; otherwise the stored catalog is used. Catalog-backed results are cached per target.
// @Tags         Shopping
// @Accept       json
// @Produce      json
// @Param        request body dto.ShoppingListRequest true "Daily target and optional inline ingredients"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Projected shopping list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shopping-list [post]
func (h *Handler) ShoppingList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDailyTarget, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	auditLog(c, "shopping_list", "Shopping list requested", map[string]interface{}{
		"daily_target":           req.DailyTarget,
		"has_inline_ingredients": len(req.Ingredients) > 0,
	})

	list, err := h.shoppingService.ShoppingList(c.Request.Context(), req)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(list)
}

// PurchasePlan handles POST /api/purchase-plan requests.
//
// @Summary      Compute a purchase plan
// @Description  Computes what to buy after netting current stock levels against the daily target. Stock comes from the movement ledger unless overridden per ingredient in the request.
// @Tags         Shopping
// @Accept       json
// @Produce      json
// @Param        request body dto.PurchasePlanRequest true "Daily target and optional stock overrides"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Purchase plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/purchase-plan [post]
func (h *Handler) PurchasePlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PurchasePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDailyTarget, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	plan, err := h.shoppingService.PurchasePlan(c.Request.Context(), req)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(plan)
}

// FormatQuantity handles GET /api/format requests.
//
// @Summary      Format a quantity for display
// @Description  Converts a raw quantity into its display form, promoting to the next unit above the threshold (ml to l, g to kg, tsp to tbsp, tbsp to cup).
// @Tags         Shopping
// @Produce      json
// @Param        quantity query number true "Quantity in base units"
// @Param        unit query string true "Unit label (ml, g, tsp, tbsp, cup)"
// @Success      200 {object} dto.SuccessResponse "Formatted quantity"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity"
// @Router       /api/format [get]
func (h *Handler) FormatQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quantityStr := c.Query("quantity")
	unit := c.Query("unit")

	quantity, err := strconv.ParseFloat(quantityStr, 64)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	builder.SuccessOK(map[string]string{
		"display": costing.FormatQuantity(quantity, unit),
	})
}
