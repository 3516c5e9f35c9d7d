package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/the-Alberich/code-test-ba/logging"
)

// Config holds the server settings
type Config struct {
	Port           string        `yaml:"port"`
	DBPath         string        `yaml:"db_path"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	TrustedProxies []string      `yaml:"trusted_proxies"`
}

// Default returns the settings used when nothing else is configured
func Default() Config {
	return Config{
		Port:           "4000",
		DBPath:         "logs.db",
		LogLevel:       "info",
		LogFormat:      "json",
		AllowedOrigins: []string{"*"},
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		RequestTimeout: 60 * time.Second,
		MaxBodyBytes:   100 << 10,
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
// Variables from a .env file in the working directory are loaded first if present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load the env vars: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadFile overlays the values present in a YAML file onto cfg
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnv overrides cfg with any set environment variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookup("DB_PATH"); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup("RATE_LIMIT_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		c.RateLimitRPS = rps
	}
	if v, ok := lookup("RATE_LIMIT_BURST"); ok && v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		c.RateLimitBurst = burst
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok && v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		c.RequestTimeout = timeout
	}
	if v, ok := lookup("MAX_BODY_BYTES"); ok && v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_BODY_BYTES %q: %w", v, err)
		}
		c.MaxBodyBytes = limit
	}
	if v, ok := lookup("TRUSTED_PROXIES"); ok && v != "" {
		c.TrustedProxies = splitList(v)
	}
	return nil
}

// Validate checks that the settings can be used to start the server
func (c Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Sprintf("port %q is not a valid TCP port", c.Port))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, "database path is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, "rate limit rps must not be negative")
	}
	if c.RateLimitBurst < 0 {
		errs = append(errs, "rate limit burst must not be negative")
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, "request timeout must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, "max body bytes must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if !isIPOrCIDR(proxy) {
			errs = append(errs, fmt.Sprintf("trusted proxy %q is neither an IP nor a CIDR", proxy))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, ", "))
	}
	return nil
}

// RateLimitEnabled reports whether per-client rate limiting is switched on
func (c Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0 && c.RateLimitBurst > 0
}

func isIPOrCIDR(v string) bool {
	if _, _, err := net.ParseCIDR(v); err == nil {
		return true
	}
	return net.ParseIP(v) != nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
