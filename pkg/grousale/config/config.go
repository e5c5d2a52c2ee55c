// Package config reads the server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

const (
	defaultPort        = "10000"
	defaultCORSOrigins = "https://grousale.com,https://your-shopify-store.myshopify.com"
	defaultDBPath      = ":memory:"
	defaultBaseURL     = "localhost:10000"
)

// Config holds the server settings
type Config struct {
	// Port is the TCP port the HTTP server listens on
	Port string
	// CORSOrigins is the exact-match allow-list of browser origins
	CORSOrigins []string
	// Store selects the registry backend: memory or sqlite
	Store string
	// DBPath is the SQLite DSN when Store is sqlite
	DBPath string
	// SweepInterval enables the background expiry sweeper when positive
	SweepInterval time.Duration
	// BaseURL is the host advertised in the Swagger document
	BaseURL string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		CORSOrigins: splitOrigins(getEnv("GROUSALE_CORS_ORIGINS", defaultCORSOrigins)),
		Store:       strings.ToLower(getEnv("GROUSALE_STORE", StoreMemory)),
		DBPath:      getEnv("GROUSALE_DB_PATH", defaultDBPath),
		BaseURL:     getEnv("GROUSALE_BASE_URL", defaultBaseURL),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	switch cfg.Store {
	case StoreMemory, StoreSQLite:
	default:
		return nil, fmt.Errorf("invalid GROUSALE_STORE %q: want %s or %s", cfg.Store, StoreMemory, StoreSQLite)
	}

	if raw := os.Getenv("GROUSALE_SWEEP_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid GROUSALE_SWEEP_INTERVAL: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid GROUSALE_SWEEP_INTERVAL %q: must not be negative", raw)
		}
		cfg.SweepInterval = d
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
