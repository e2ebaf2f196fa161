// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Logging LoggingConfig
	Store   StoreConfig
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// StoreConfig holds settings for the mock persistence stores
type StoreConfig struct {
	// LatencyMin and LatencyMax bound the simulated remote latency. Each
	// store operation sleeps a uniformly random duration in [min, max].
	LatencyMin time.Duration
	LatencyMax time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// Store latency configuration (default: 200ms-400ms)
	latencyMinStr := os.Getenv("STORE_LATENCY_MIN")
	if latencyMinStr == "" {
		latencyMinStr = "200ms"
	}
	latencyMin, err := time.ParseDuration(latencyMinStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_LATENCY_MIN: %w", err)
	}
	if latencyMin < 0 {
		return nil, fmt.Errorf("STORE_LATENCY_MIN must not be negative")
	}
	cfg.Store.LatencyMin = latencyMin

	latencyMaxStr := os.Getenv("STORE_LATENCY_MAX")
	if latencyMaxStr == "" {
		latencyMaxStr = "400ms"
	}
	latencyMax, err := time.ParseDuration(latencyMaxStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_LATENCY_MAX: %w", err)
	}
	if latencyMax < latencyMin {
		return nil, fmt.Errorf("STORE_LATENCY_MAX must not be less than STORE_LATENCY_MIN")
	}
	cfg.Store.LatencyMax = latencyMax

	return cfg, nil
}
