// Package middleware provides HTTP middleware components for the cafe service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id to and from clients.
const RequestIDHeader = "X-Request-ID"

// ContextKey keeps middleware context keys from colliding with handler keys.
type ContextKey string

// RequestIDKey is where the id is stored on the gin context.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an id, reusing a client-supplied
// X-Request-ID when present and minting a UUID otherwise. The id is echoed
// back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID reads the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
