package config

import (
	"strings"
	"time"
)

// APIConfig contains the upstream REST API configuration.
type APIConfig struct {
	// BaseURL is the root of the upstream API, including the version
	// prefix. All request paths are resolved relative to it.
	BaseURL string `env:"BASE_URL" envDefault:"https://upskilling-egypt.com:3006/api/v1"`

	// Timeout bounds every HTTP round trip to the upstream API.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// Login credentials picked up at startup for non-interactive use.
	// Leave empty to start unauthenticated.
	LoginEmail    string `env:"LOGIN_EMAIL"    envDefault:""`
	LoginPassword string `env:"LOGIN_PASSWORD" envDefault:""`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
}
