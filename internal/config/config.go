// Package config loads the CLI configuration from the environment, with a
// .env file picked up when present.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the base endpoint for each backend service plus local
// settings. Defaults match the standard local deployment.
type Config struct {
	AuthURL      string `envconfig:"BAR_AUTH_URL" default:"http://localhost:8081"`
	InventoryURL string `envconfig:"BAR_INVENTORY_URL" default:"http://localhost:8082"`
	OrderURL     string `envconfig:"BAR_ORDER_URL" default:"http://localhost:8083"`
	PricingURL   string `envconfig:"BAR_PRICING_URL" default:"http://localhost:8084"`

	// CredentialsPath overrides where the token pair is persisted.
	CredentialsPath string `envconfig:"BAR_CREDENTIALS_PATH"`

	LogLevel string `envconfig:"BAR_LOG_LEVEL" default:"warn"`
}

// Load reads the environment into a Config. A missing .env file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config from environment: %w", err)
	}
	return &cfg, nil
}
