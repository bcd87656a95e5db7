// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an
// error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the board service.
type Config struct {
	Port            string
	UpstreamURL     string        // base URL of the remote jobs API
	UpstreamTimeout time.Duration // per-request timeout toward upstream
	RedisURL        string        // empty disables the listing cache
	CacheTTL        time.Duration
	WarmIntervalHrs int // how often the cron warm job fires
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	upstreamURL := os.Getenv("UPSTREAM_URL")
	if upstreamURL == "" {
		return nil, fmt.Errorf("UPSTREAM_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	timeout := 15 * time.Second
	if s := os.Getenv("UPSTREAM_TIMEOUT_S"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("UPSTREAM_TIMEOUT_S must be a positive integer, got %q", s)
		}
		timeout = time.Duration(v) * time.Second
	}

	ttl := 60 * time.Second
	if s := os.Getenv("CACHE_TTL_S"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_S must be a positive integer, got %q", s)
		}
		ttl = time.Duration(v) * time.Second
	}

	warm := 6
	if s := os.Getenv("WARM_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("WARM_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		warm = v
	}

	return &Config{
		Port:            port,
		UpstreamURL:     upstreamURL,
		UpstreamTimeout: timeout,
		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTL:        ttl,
		WarmIntervalHrs: warm,
	}, nil
}
