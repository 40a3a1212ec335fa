package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://upskilling-egypt.com:3006/api/v1" {
		t.Errorf("unexpected API base URL: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("unexpected API timeout: %s", cfg.API.Timeout)
	}
	if cfg.Storage.Backend != StorageFile {
		t.Errorf("expected file backend by default, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.FilePath != ".fms-state.json" {
		t.Errorf("unexpected state file path: %s", cfg.Storage.FilePath)
	}
	if cfg.Cache.StaleTime != 5*time.Minute {
		t.Errorf("unexpected cache stale time: %s", cfg.Cache.StaleTime)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://staging.example.com/api/v2/")
	t.Setenv("API_TIMEOUT", "10s")
	t.Setenv("API_LOGIN_EMAIL", "admin@example.com")
	t.Setenv("API_LOGIN_PASSWORD", "hunter2")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_PASSWORD", "redis-secret")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_REDIS_ADDR", "cache.internal:6379")
	t.Setenv("CACHE_STALE_TIME", "90s")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://staging.example.com/api/v2" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("unexpected API timeout: %s", cfg.API.Timeout)
	}
	if cfg.API.LoginEmail != "admin@example.com" {
		t.Errorf("unexpected login email: %s", cfg.API.LoginEmail)
	}
	if cfg.Storage.Backend != StorageRedis {
		t.Errorf("expected redis backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Redis.Addr != "redis.internal:6380" {
		t.Errorf("unexpected redis addr: %s", cfg.Storage.Redis.Addr)
	}
	if cfg.Storage.Redis.DB != 2 {
		t.Errorf("unexpected redis db: %d", cfg.Storage.Redis.DB)
	}
	if cfg.Cache.Redis.Addr != "cache.internal:6379" {
		t.Errorf("unexpected cache redis addr: %s", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.StaleTime != 90*time.Second {
		t.Errorf("unexpected cache stale time: %s", cfg.Cache.StaleTime)
	}
}

func TestStorageBackend_UnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    StorageBackend
		expectError bool
	}{
		{name: "redis", input: "redis", expected: StorageRedis},
		{name: "file", input: "file", expected: StorageFile},
		{name: "empty defaults to file", input: "", expected: StorageFile},
		{name: "unknown", input: "postgres", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b StorageBackend
			err := b.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if b != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, b)
			}
		})
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("expected NODE_ENV=development to enable dev mode")
	}
}

func TestAPIConfig_Sanitize_ClampsTimeout(t *testing.T) {
	a := APIConfig{BaseURL: "  https://api.example.com/ ", Timeout: -time.Second}
	a.Sanitize()

	if a.BaseURL != "https://api.example.com" {
		t.Errorf("expected trimmed base URL, got %q", a.BaseURL)
	}
	if a.Timeout != 30*time.Second {
		t.Errorf("expected timeout reset to default, got %s", a.Timeout)
	}
}
