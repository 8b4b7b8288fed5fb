package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth validates the caller's API key against validKeys, reading the
// X-API-Key header first and the api_key query parameter as a fallback.
// An empty key set disables the check entirely.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			unauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !validKeys[key] {
			unauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}
