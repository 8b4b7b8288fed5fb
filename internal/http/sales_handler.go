package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// SalesHandler provides HTTP handlers for sale recording and listing.
type SalesHandler struct {
	salesService service.SalesService
}

// NewSalesHandler creates a new SalesHandler instance.
func NewSalesHandler(salesService service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// Record handles POST /api/sales requests.
//
// @Summary      Record a sale
// @Description  Records a sale, captures the cost of goods sold at sale time and deducts recipe quantities from stock. Supports idempotency via the Idempotency-Key header so retried submissions are not double-counted.
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.RecordSaleRequest true "Sale data"
// @Success      201 {object} dto.SuccessResponse "Recorded sale"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown product"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/sales [post]
func (h *SalesHandler) Record(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	sale, err := h.salesService.RecordSale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			auditLogError(c, "sale_failed", "Sale recording failed", err, map[string]interface{}{
				"product_id": req.ProductID,
			})
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "sale_recorded", "Sale recorded", map[string]interface{}{
		"sale_id":    sale.ID.Hex(),
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
		"total":      sale.Total,
	})

	builder.SuccessCreated(sale)
}

// ListByDay handles GET /api/sales requests.
//
// @Summary      List sales for a day
// @Description  Returns all sales recorded on the given day. Defaults to today when no date is supplied.
// @Tags         Sales
// @Produce      json
// @Param        date query string false "Day to list (YYYY-MM-DD), defaults to today"
// @Success      200 {object} dto.SuccessResponse "Sales for the day"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid date"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/sales [get]
func (h *SalesHandler) ListByDay(c *gin.Context) {
	builder := NewResponseBuilder(c)

	day, err := dayFromQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	sales, err := h.salesService.ListByDay(c.Request.Context(), day)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(sales)
}
