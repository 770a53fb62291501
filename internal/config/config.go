// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"JP_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"JP_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"JP_ENV" envDefault:"development"`
	LogLevel   string `env:"JP_LOG_LEVEL" envDefault:"info"`

	// Store configuration
	StoreBackend string `env:"JP_STORE_BACKEND" envDefault:"sqlite"` // sqlite, memory or redis
	DBPath       string `env:"JP_DB_PATH" envDefault:"./data/jpstudio.db"`
	RedisURL     string `env:"JP_REDIS_URL"`                     // Redis URL for the redis backend
	RedisPrefix  string `env:"JP_REDIS_PREFIX" envDefault:"jp:"` // Redis key prefix

	// Admin credential overrides (compiled-in defaults apply when empty)
	AdminEmail    string `env:"JP_ADMIN_EMAIL"`
	AdminPassword string `env:"JP_ADMIN_PASSWORD"`
	AdminName     string `env:"JP_ADMIN_NAME"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedis returns true if the Redis store backend is configured.
func (c Config) UseRedis() bool {
	return c.StoreBackend == "redis"
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	switch cfg.StoreBackend {
	case "sqlite", "memory", "redis":
	default:
		return nil, fmt.Errorf("invalid JP_STORE_BACKEND %q (want sqlite, memory or redis)", cfg.StoreBackend)
	}

	if cfg.UseRedis() && cfg.RedisURL == "" {
		return nil, fmt.Errorf("JP_REDIS_URL is required when JP_STORE_BACKEND=redis")
	}

	return cfg, nil
}
