package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the service.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"host=localhost user=postgres password=postgres dbname=exercise_tracker port=5432 sslmode=disable"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"3000"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	LogSQL      bool   `env:"LOG_SQL"`
}

// Load reads configuration from the environment, honoring a local .env file
// when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
