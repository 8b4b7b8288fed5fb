package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)

	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "cafe_service", cfg.Database.DatabaseName)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)

	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "5 0 * * *", cfg.Scheduler.DailyCloseSpec)
	assert.Empty(t, cfg.Scheduler.PriceFeedSpec)

	assert.False(t, cfg.PriceFeed.Enabled)
	assert.Equal(t, 2, cfg.PriceFeed.RetryCount)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "250")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("MONGODB_DATABASE", "cafe_test")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "5m")
	t.Setenv("PRICE_FEED_ENABLED", "true")
	t.Setenv("PRICE_FEED_URL", "https://supplier.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 250, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "cafe_test", cfg.Database.DatabaseName)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.True(t, cfg.PriceFeed.Enabled)
	assert.Equal(t, "https://supplier.example.com", cfg.PriceFeed.BaseURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("MONGODB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Database.Enabled)
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]bool
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single key", input: "key-1", expected: map[string]bool{"key-1": true}},
		{
			name:     "multiple with whitespace",
			input:    "key-1, key-2 ,key-3",
			expected: map[string]bool{"key-1": true, "key-2": true, "key-3": true},
		},
		{name: "trailing comma", input: "key-1,", expected: map[string]bool{"key-1": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAPIKeys(tt.input))
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	t.Run("empty keeps defaults", func(t *testing.T) {
		origins := parseCORSOrigins("")
		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, origins)
	})

	t.Run("custom origins appended to defaults", func(t *testing.T) {
		origins := parseCORSOrigins("https://pos.kopikita.id, https://admin.kopikita.id")
		assert.Contains(t, origins, "http://localhost:3000")
		assert.Contains(t, origins, "https://pos.kopikita.id")
		assert.Contains(t, origins, "https://admin.kopikita.id")
	})
}
