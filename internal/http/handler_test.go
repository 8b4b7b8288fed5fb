package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/brewops/cafe-service/internal/domain/dto"
	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func shoppingRouter() *gin.Engine {
	shoppingService := service.NewShoppingService(nil, nil)
	handler := NewHandler(shoppingService)

	router := gin.New()
	router.POST("/api/shopping-list", handler.ShoppingList)
	router.POST("/api/purchase-plan", handler.PurchasePlan)
	router.GET("/api/format", handler.FormatQuantity)
	return router
}

func TestHandler_ShoppingList_Inline(t *testing.T) {
	router := shoppingRouter()

	body := `{
		"daily_target": 60,
		"ingredients": [
			{"name": "Fresh milk", "unit_cost": 48500, "unit_quantity": 1000, "unit": "ml", "usage_per_cup": 10}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/shopping-list", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, _ := json.Marshal(resp.Data)
	var list model.ShoppingList
	assert.NoError(t, json.Unmarshal(data, &list))

	assert.Equal(t, 60, list.DailyTarget)
	if assert.Len(t, list.Items, 1) {
		assert.Equal(t, "Fresh milk", list.Items[0].Name)
		assert.Equal(t, float64(600), list.Items[0].TotalNeeded)
		assert.Equal(t, "600 ml", list.Items[0].Display)
		assert.Equal(t, float64(29100), list.Items[0].TotalCost)
	}
	assert.Equal(t, float64(29100), list.GrandTotal)
	assert.Equal(t, 1, list.ItemCount)
}

func TestHandler_ShoppingList_InvalidTarget(t *testing.T) {
	router := shoppingRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero target", body: `{"daily_target": 0}`},
		{name: "negative target", body: `{"daily_target": -5}`},
		{name: "missing target", body: `{}`},
		{name: "malformed json", body: `{"daily_target": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/shopping-list", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), dto.ErrCodeInvalidRequest)
		})
	}
}

func TestHandler_PurchasePlan_NoCatalog(t *testing.T) {
	router := shoppingRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/purchase-plan", strings.NewReader(`{"daily_target": 60}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// No ingredient catalog is wired, so the service reports its absence.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_FormatQuantity(t *testing.T) {
	router := shoppingRouter()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "promotes ml to l", query: "quantity=1500&unit=ml", expected: "1.5 l"},
		{name: "keeps small grams", query: "quantity=500&unit=g", expected: "500 g"},
		{name: "promotes g to kg", query: "quantity=2500&unit=g", expected: "2.5 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/format?"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.expected)
		})
	}
}

func TestHandler_FormatQuantity_InvalidQuantity(t *testing.T) {
	router := shoppingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/format?quantity=abc&unit=ml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
