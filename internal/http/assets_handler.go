package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// AssetsHandler provides HTTP handlers for fixed assets.
type AssetsHandler struct {
	assetsService service.AssetsService
}

// NewAssetsHandler creates a new AssetsHandler instance.
func NewAssetsHandler(assetsService service.AssetsService) *AssetsHandler {
	return &AssetsHandler{assetsService: assetsService}
}

// Create handles POST /api/assets requests.
//
// @Summary      Create asset
// @Description  Registers a fixed asset with its straight-line depreciation parameters.
// @Tags         Assets
// @Accept       json
// @Produce      json
// @Param        request body dto.AssetRequest true "Asset data"
// @Success      201 {object} dto.SuccessResponse "Created asset"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assets [post]
func (h *AssetsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	asset, err := h.assetsService.Create(c.Request.Context(), req)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "asset_create", "Asset registered", map[string]interface{}{
		"asset_id": asset.ID.Hex(),
		"name":     asset.Name,
	})

	builder.SuccessCreated(asset)
}

// Get handles GET /api/assets/:id requests.
//
// @Summary      Get asset
// @Tags         Assets
// @Produce      json
// @Param        id path string true "Asset ID"
// @Success      200 {object} dto.SuccessResponse "Asset"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/assets/{id} [get]
func (h *AssetsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	asset, err := h.assetsService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(asset)
}

// List handles GET /api/assets requests.
//
// @Summary      List assets
// @Tags         Assets
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Assets in acquisition order"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assets [get]
func (h *AssetsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	assets, err := h.assetsService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(assets)
}

// Update handles PUT /api/assets/:id requests.
//
// @Summary      Update asset
// @Tags         Assets
// @Accept       json
// @Produce      json
// @Param        id path string true "Asset ID"
// @Param        request body dto.AssetRequest true "Asset data"
// @Success      200 {object} dto.SuccessResponse "Updated asset"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assets/{id} [put]
func (h *AssetsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	asset, err := h.assetsService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
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

	auditLog(c, "asset_update", "Asset updated", map[string]interface{}{
		"asset_id": id.Hex(),
	})

	builder.SuccessOK(asset)
}

// Delete handles DELETE /api/assets/:id requests.
//
// @Summary      Delete asset
// @Tags         Assets
// @Produce      json
// @Param        id path string true "Asset ID"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assets/{id} [delete]
func (h *AssetsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.assetsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "asset_delete", "Asset deleted", map[string]interface{}{
		"asset_id": id.Hex(),
	})

	builder.SuccessOK(map[string]string{"deleted": id.Hex()})
}

// Valuations handles GET /api/assets/valuations requests.
//
// @Summary      Asset valuations
// @Description  Returns each asset with its monthly depreciation and current book value. An optional date computes book values as of that day.
// @Tags         Assets
// @Produce      json
// @Param        date query string false "Valuation date (YYYY-MM-DD), defaults to today"
// @Success      200 {object} dto.SuccessResponse "Asset valuations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid date"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assets/valuations [get]
func (h *AssetsHandler) Valuations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	at, err := dayFromQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	valuations, err := h.assetsService.Valuations(c.Request.Context(), at)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(valuations)
}
