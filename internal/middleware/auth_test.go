package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func apiKeyRouter(validKeys map[string]bool) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), APIKeyAuth(validKeys))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	validKeys := map[string]bool{"secret-key": true}

	tests := []struct {
		name       string
		setupReq   func(*http.Request)
		wantStatus int
	}{
		{
			name: "valid key in header",
			setupReq: func(r *http.Request) {
				r.Header.Set(APIKeyHeader, "secret-key")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid key in query",
			setupReq:   func(r *http.Request) { r.URL.RawQuery = "api_key=secret-key" },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key",
			setupReq:   func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid key",
			setupReq: func(r *http.Request) {
				r.Header.Set(APIKeyHeader, "wrong-key")
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := apiKeyRouter(validKeys)
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupReq(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAPIKeyAuth_DisabledWithoutKeys(t *testing.T) {
	router := apiKeyRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
