package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// ProductsHandler provides HTTP handlers for the product menu.
type ProductsHandler struct {
	productsService service.ProductsService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(productsService service.ProductsService) *ProductsHandler {
	return &ProductsHandler{productsService: productsService}
}

// Create handles POST /api/products requests.
//
// @Summary      Create product
// @Description  Adds a menu product with its recipe. Every recipe line must reference an existing ingredient.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "Product data"
// @Success      201 {object} dto.SuccessResponse "Created product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown ingredient"
// @Failure      409 {object} dto.ErrorResponse "Conflict - name already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.productsService.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateName):
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
		case errors.Is(err, service.ErrNotFound):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		default:
			var validationErr *dto.ValidationError
			if errors.As(err, &validationErr) {
				builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			} else {
				builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			}
		}
		return
	}

	auditLog(c, "product_create", "Product created", map[string]interface{}{
		"product_id": product.ID.Hex(),
		"name":       product.Name,
	})

	builder.SuccessCreated(product)
}

// Get handles GET /api/products/:id requests.
//
// @Summary      Get product
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	product, err := h.productsService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(product)
}

// List handles GET /api/products requests.
//
// @Summary      List products
// @Tags         Products
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Product menu"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.productsService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(products)
}

// Update handles PUT /api/products/:id requests.
//
// @Summary      Update product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.ProductRequest true "Product data"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.productsService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "product_update", "Product updated", map[string]interface{}{
		"product_id": id.Hex(),
	})

	builder.SuccessOK(product)
}

// Delete handles DELETE /api/products/:id requests.
//
// @Summary      Delete product
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.productsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "product_delete", "Product deleted", map[string]interface{}{
		"product_id": id.Hex(),
	})

	builder.SuccessOK(map[string]string{"deleted": id.Hex()})
}

// Cost handles GET /api/products/:id/cost requests.
//
// @Summary      Product cost breakdown
// @Description  Returns the per-cup cost of goods sold for a product, line by line, with the margin against the menu price. Ingredients missing from the catalog contribute zero.
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Cost breakdown"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id}/cost [get]
func (h *ProductsHandler) Cost(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	cost, err := h.productsService.Cost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(cost)
}
