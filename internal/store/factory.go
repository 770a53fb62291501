package store

import "fmt"

// Backend names accepted by New.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds configuration for store creation.
type Config struct {
	// Backend is the storage backend: "sqlite" (default), "memory" or "redis".
	Backend string

	// Path is the database file path (sqlite backend only).
	Path string

	// RedisURL is the Redis connection URL (redis backend only).
	RedisURL string

	// RedisPrefix is the key prefix for Redis (redis backend only).
	RedisPrefix string
}

// New creates a store for the configured backend.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		return OpenSQLite(cfg.Path)
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		opts := DefaultRedisOptions()
		opts.URL = cfg.RedisURL
		if cfg.RedisPrefix != "" {
			opts.Prefix = cfg.RedisPrefix
		}
		return NewRedis(opts)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
