package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// StockHandler provides HTTP handlers for the stock ledger.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new StockHandler instance.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// RecordMovement handles POST /api/stock/movements requests.
//
// @Summary      Record a stock movement
// @Description  Appends an entry to the stock ledger: "in" for deliveries, "out" for consumption, "adjust" for counted levels.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Param        request body dto.StockMovementRequest true "Movement data"
// @Success      201 {object} dto.SuccessResponse "Recorded movement"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown ingredient"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock/movements [post]
func (h *StockHandler) RecordMovement(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	movement, err := h.stockService.RecordMovement(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			var validationErr *dto.ValidationError
			if errors.As(err, &validationErr) {
				builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			} else {
				builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			}
		}
		return
	}

	auditLog(c, "stock_movement", "Stock movement recorded", map[string]interface{}{
		"ingredient_id": req.IngredientID,
		"type":          req.Type,
		"quantity":      req.Quantity,
	})

	builder.SuccessCreated(movement)
}

// Movements handles GET /api/stock/movements/:id requests.
//
// @Summary      List movements for an ingredient
// @Tags         Stock
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} dto.SuccessResponse "Movements in recorded order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ID"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock/movements/{id} [get]
func (h *StockHandler) Movements(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	movements, err := h.stockService.Movements(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(movements)
}

// Levels handles GET /api/stock/levels requests.
//
// @Summary      Current stock levels
// @Description  Folds the movement ledger into the current on-hand level per ingredient.
// @Tags         Stock
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Stock levels"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock/levels [get]
func (h *StockHandler) Levels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	levels, err := h.stockService.Levels(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(levels)
}

// LowStock handles GET /api/stock/low requests.
//
// @Summary      Low stock report
// @Description  Returns ingredients whose on-hand level falls short of the quantity needed for the daily cup target.
// @Tags         Stock
// @Produce      json
// @Param        daily_target query int true "Daily cup target"
// @Success      200 {object} dto.SuccessResponse "Ingredients below the needed level"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid daily target"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	dailyTarget, err := strconv.Atoi(c.Query("daily_target"))
	if err != nil || dailyTarget <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDailyTarget, err)
		return
	}

	items, err := h.stockService.LowStock(c.Request.Context(), dailyTarget)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(items)
}
