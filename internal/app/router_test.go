package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brewops/cafe-service/config"
)

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	cfg := config.Config{}
	cfg.Server.RateLimit = 100
	cfg.Server.RateWindow = time.Minute

	services := InitializeServices(nil, cfg)
	components := InitializeRouter(nil, services, cfg)

	assert.NotNil(t, components.HealthHandler)
	assert.Equal(t, 100, components.Config.RateLimit)
	assert.NotNil(t, components.Config.ShoppingService)
	assert.Nil(t, components.Config.LoggingService)
	assert.Nil(t, components.Config.AuthService)
}

func TestInitializeRouter_PropagatesAuthConfig(t *testing.T) {
	cfg := config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.APIKeys = map[string]bool{"cafe-api-key": true}
	cfg.Auth.JWTSecretKey = "test-secret"
	cfg.Auth.JWTRefreshSecret = "test-refresh-secret"

	services := InitializeServices(mockDatabaseComponents(), cfg)
	components := InitializeRouter(mockDatabaseComponents(), services, cfg)

	assert.True(t, components.Config.EnableAuth)
	assert.Equal(t, map[string]bool{"cafe-api-key": true}, components.Config.APIKeys)
	assert.NotNil(t, components.Config.AuthService)
}
