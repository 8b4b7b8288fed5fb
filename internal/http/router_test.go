package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brewops/cafe-service/internal/mocks"
	"github.com/brewops/cafe-service/internal/service"
)

func testRouterConfig() RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.ShoppingService = service.NewShoppingService(nil, nil)
	return cfg
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := NewRouter(NewHealthHandler(), testRouterConfig())

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "liveness", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readiness", path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_PublicShoppingRoutes(t *testing.T) {
	router := NewRouter(NewHealthHandler(), testRouterConfig())

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
	assert.Contains(t, w.Body.String(), "29100")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_AuthEnabledProtectsCafeRoutes(t *testing.T) {
	cfg := testRouterConfig()
	cfg.AuthService = new(mocks.MockAuthService)
	router := NewRouter(NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/shopping-list", strings.NewReader(`{"daily_target": 60}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewRouter_AuthRoutesArePublic(t *testing.T) {
	cfg := testRouterConfig()
	cfg.AuthService = new(mocks.MockAuthService)
	router := NewRouter(NewHealthHandler(), cfg)

	// Invalid body still proves the route is reachable without a token.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewRouter_RateLimitHeaders(t *testing.T) {
	cfg := testRouterConfig()
	cfg.RateLimit = 5
	cfg.RateWindow = time.Minute
	router := NewRouter(NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
}

func TestNewRouter_APIKeyAuth(t *testing.T) {
	cfg := testRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"cafe-api-key": true}
	router := NewRouter(NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/format?quantity=600&unit=ml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/format?quantity=600&unit=ml", nil)
	req.Header.Set("X-API-Key", "cafe-api-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
