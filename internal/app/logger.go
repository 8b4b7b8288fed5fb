package app

import (
	"os"

	"github.com/brewops/cafe-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger before config
// loading, so startup problems are already logged structurally.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	pretty := os.Getenv("LOG_PRETTY") == "true"
	logger.Init(logLevel, pretty)
}
