package config

import "time"

// CacheConfig contains the query cache configuration (Redis-based).
type CacheConfig struct {
	// Enabled turns the shared Redis query cache on. When disabled the
	// query layer falls back to the state storage backend's Redis only
	// if one is configured; otherwise reads go straight through.
	Enabled bool `env:"CACHE_ENABLED" envDefault:"true"`

	// Redis connection settings for the cache.
	Redis RedisConfig `envPrefix:"CACHE_REDIS_"`

	// StaleTime is how long a cached server response stays fresh.
	StaleTime time.Duration `env:"CACHE_STALE_TIME" envDefault:"5m"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.StaleTime <= 0 {
		c.StaleTime = 5 * time.Minute
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
}
