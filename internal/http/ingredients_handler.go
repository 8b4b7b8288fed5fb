package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// IngredientsHandler provides HTTP handlers for the ingredient catalog.
type IngredientsHandler struct {
	ingredientsService service.IngredientsService
}

// NewIngredientsHandler creates a new IngredientsHandler instance.
func NewIngredientsHandler(ingredientsService service.IngredientsService) *IngredientsHandler {
	return &IngredientsHandler{ingredientsService: ingredientsService}
}

// idFromParam parses the :id path parameter as a Mongo ObjectID.
func idFromParam(c *gin.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param("id"))
}

// Create handles POST /api/ingredients requests.
//
// @Summary      Create ingredient
// @Description  Adds an ingredient to the catalog. The per-cup cost is computed from the pricing fields at write time.
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        request body dto.IngredientInput true "Ingredient data"
// @Success      201 {object} dto.SuccessResponse "Created ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - name already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients [post]
func (h *IngredientsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var input dto.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ingredient, err := h.ingredientsService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "ingredient_create", "Ingredient created", map[string]interface{}{
		"ingredient_id": ingredient.ID.Hex(),
		"name":          ingredient.Name,
	})

	builder.SuccessCreated(ingredient)
}

// Get handles GET /api/ingredients/:id requests.
//
// @Summary      Get ingredient
// @Tags         Ingredients
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} dto.SuccessResponse "Ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [get]
func (h *IngredientsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	ingredient, err := h.ingredientsService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(ingredient)
}

// List handles GET /api/ingredients requests.
//
// @Summary      List ingredients
// @Tags         Ingredients
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Ingredient catalog"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients [get]
func (h *IngredientsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ingredients, err := h.ingredientsService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(ingredients)
}

// Update handles PUT /api/ingredients/:id requests.
//
// @Summary      Update ingredient
// @Description  Replaces an ingredient's fields and recomputes its per-cup cost.
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Param        request body dto.IngredientInput true "Ingredient data"
// @Success      200 {object} dto.SuccessResponse "Updated ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [put]
func (h *IngredientsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var input dto.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ingredient, err := h.ingredientsService.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "ingredient_update", "Ingredient updated", map[string]interface{}{
		"ingredient_id": id.Hex(),
	})

	builder.SuccessOK(ingredient)
}

// Delete handles DELETE /api/ingredients/:id requests.
//
// @Summary      Delete ingredient
// @Tags         Ingredients
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := idFromParam(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.ingredientsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	auditLog(c, "ingredient_delete", "Ingredient deleted", map[string]interface{}{
		"ingredient_id": id.Hex(),
	})

	builder.SuccessOK(map[string]string{"deleted": id.Hex()})
}
