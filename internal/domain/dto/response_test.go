package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeInvalidRequest, "daily_target: must be a positive integer")

	assert.Equal(t, ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "daily_target: must be a positive integer", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.RequestID)
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	resp := NewError(ErrCodeNotFound, "not found").WithRequestID("req-123")
	assert.Equal(t, "req-123", resp.RequestID)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}
