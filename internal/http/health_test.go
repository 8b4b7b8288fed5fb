package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/brewops/cafe-service/internal/circuitbreaker"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Check() error {
	return s.err
}

func healthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	h.Register(router)
	return router
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := healthRouter(NewHealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthHandler_Readiness_NoCheckers(t *testing.T) {
	router := healthRouter(NewHealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"ok"`)
}

func TestHealthHandler_Readiness_HealthyCheckers(t *testing.T) {
	handler := NewHealthHandler()
	handler.RegisterChecker("mongodb", stubChecker{})
	router := healthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
}

func TestHealthHandler_Readiness_FailingChecker(t *testing.T) {
	handler := NewHealthHandler()
	handler.RegisterChecker("mongodb", stubChecker{err: errors.New("connection refused")})
	router := healthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestHealthHandler_Readiness_OpenCircuitBreaker(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "mongodb",
	})
	_ = cb.Execute(context.Background(), func() error {
		return errors.New("write failed")
	})
	assert.True(t, cb.IsOpen())

	handler := NewHealthHandler()
	handler.RegisterCircuitBreaker("mongodb", cb)
	router := healthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb_circuit":"open"`)
}
