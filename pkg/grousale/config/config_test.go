package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT",
		"GROUSALE_CORS_ORIGINS",
		"GROUSALE_STORE",
		"GROUSALE_DB_PATH",
		"GROUSALE_SWEEP_INTERVAL",
		"GROUSALE_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, ":10000", cfg.Addr())
	assert.Equal(t, []string{"https://grousale.com", "https://your-shopify-store.myshopify.com"}, cfg.CORSOrigins)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Zero(t, cfg.SweepInterval)
	assert.Equal(t, "localhost:10000", cfg.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("GROUSALE_CORS_ORIGINS", " https://a.example/ , ,https://b.example")
	t.Setenv("GROUSALE_STORE", "SQLite")
	t.Setenv("GROUSALE_DB_PATH", "/tmp/grousale.db")
	t.Setenv("GROUSALE_SWEEP_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/grousale.db", cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"non-numeric port":  {"PORT": "http"},
		"port out of range": {"PORT": "70000"},
		"unknown store":     {"GROUSALE_STORE": "redis"},
		"bad interval":      {"GROUSALE_SWEEP_INTERVAL": "soon"},
		"negative interval": {"GROUSALE_SWEEP_INTERVAL": "-1m"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
