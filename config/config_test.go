package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "logs.db", cfg.DBPath)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, int64(100*1024), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.TrustedProxies, "forwarding headers are ignored unless a proxy is configured")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"PORT":                 "8081",
		"DB_PATH":              "/tmp/events.db",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "text",
		"CORS_ALLOWED_ORIGINS": "http://localhost:3000, https://example.com ,",
		"RATE_LIMIT_RPS":       "2.5",
		"RATE_LIMIT_BURST":     "5",
		"REQUEST_TIMEOUT":      "15s",
		"MAX_BODY_BYTES":       "2048",
		"TRUSTED_PROXIES":      "10.0.0.0/8, 127.0.0.1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "/tmp/events.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}

func TestApplyEnv_InvalidNumbers(t *testing.T) {
	tests := map[string]map[string]string{
		"rps":     {"RATE_LIMIT_RPS": "fast"},
		"burst":   {"RATE_LIMIT_BURST": "1.5"},
		"timeout": {"REQUEST_TIMEOUT": "soon"},
		"body":    {"MAX_BODY_BYTES": "100kb"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, cfg.applyEnv(envMap(env)))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
db_path: data/logs.db
allowed_origins:
  - http://localhost:5173
rate_limit_rps: 0
request_timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Default()
	require.NoError(t, cfg.loadFile(path))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "data/logs.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.RateLimitEnabled())
	// Keys absent from the file keep their defaults
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.loadFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\nlog_level: warn\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"non-numeric port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"empty db path", func(c *Config) { c.DBPath = " " }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative rps", func(c *Config) { c.RateLimitRPS = -1 }},
		{"negative burst", func(c *Config) { c.RateLimitBurst = -1 }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"zero body limit", func(c *Config) { c.MaxBodyBytes = 0 }},
		{"bad trusted proxy", func(c *Config) { c.TrustedProxies = []string{"proxy.internal"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
