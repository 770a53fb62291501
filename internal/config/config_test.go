package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q, want localhost:8080", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
	if cfg.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.UseRedis() {
		t.Error("UseRedis should be false by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JP_SERVER_HOST", "0.0.0.0")
	t.Setenv("JP_SERVER_PORT", "9000")
	t.Setenv("JP_ENV", "production")
	t.Setenv("JP_STORE_BACKEND", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:9000" {
		t.Errorf("ServerAddr = %q, want 0.0.0.0:9000", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("expected production mode")
	}
	if cfg.StoreBackend != "memory" {
		t.Errorf("StoreBackend = %q, want memory", cfg.StoreBackend)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("JP_STORE_BACKEND", "dynamo")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid backend")
	}
}

func TestLoad_RedisRequiresURL(t *testing.T) {
	t.Setenv("JP_STORE_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Error("expected error when redis backend has no URL")
	}

	t.Setenv("JP_REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseRedis() {
		t.Error("UseRedis should be true")
	}
}
