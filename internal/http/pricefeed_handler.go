package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// PriceFeedHandler provides HTTP handlers for supplier price imports.
type PriceFeedHandler struct {
	priceFeedService service.PriceFeedService
}

// NewPriceFeedHandler creates a new PriceFeedHandler instance.
func NewPriceFeedHandler(priceFeedService service.PriceFeedService) *PriceFeedHandler {
	return &PriceFeedHandler{priceFeedService: priceFeedService}
}

// Import handles POST /api/pricefeed/import requests.
//
// @Summary      Import supplier prices
// @Description  Fetches the supplier price feed and updates matching catalog ingredients. Entries with no catalog match are reported back unchanged.
// @Tags         PriceFeed
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Import result"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - owner role required"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - supplier feed unreachable"
// @Security     BearerAuth
// @Router       /api/pricefeed/import [post]
func (h *PriceFeedHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	result, err := h.priceFeedService.Import(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyInternalError, err)
		return
	}

	auditLog(c, "pricefeed_import", "Supplier price feed imported", map[string]interface{}{
		"fetched": result.Fetched,
		"updated": result.Updated,
	})

	builder.SuccessOK(result)
}
