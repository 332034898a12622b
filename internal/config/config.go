package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultApolloBaseURL  = "https://api.apollo.io/v1"
	defaultFreepikBaseURL = "https://api.freepik.com/v1"
	defaultMockDelay      = time.Second
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// ApolloConfig configures the company/contact enrichment vendor.
type ApolloConfig struct {
	BaseURL   string
	APIKey    string
	UseMock   bool
	MockDelay time.Duration
}

// FreepikConfig configures the stock-asset vendor.
type FreepikConfig struct {
	BaseURL string
	APIKey  string
}

// BootstrapAdmin is the operator provisioned at startup when both fields are set.
type BootstrapAdmin struct {
	Email    string
	Password string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL        string
	JWTSecret          string
	Port               string
	LogLevel           string
	LogDevelopment     bool
	TokenTTL           time.Duration
	VendorHTTPTimeout  time.Duration
	PhoneDefaultRegion string
	RateLimitAssets    RateLimitConfig
	Apollo             ApolloConfig
	Freepik            FreepikConfig
	Admin              BootstrapAdmin
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		TokenTTL:           parseDuration(getEnv("JWT_TTL", "24h")),
		PhoneDefaultRegion: strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "US")),
		Apollo: ApolloConfig{
			BaseURL: strings.TrimRight(getEnv("APOLLO_BASE_URL", defaultApolloBaseURL), "/"),
			APIKey:  os.Getenv("APOLLO_API_KEY"),
		},
		Freepik: FreepikConfig{
			BaseURL: strings.TrimRight(getEnv("FREEPIK_BASE_URL", defaultFreepikBaseURL), "/"),
			APIKey:  os.Getenv("FREEPIK_API_KEY"),
		},
		Admin: BootstrapAdmin{
			Email:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	var err error
	if cfg.LogDevelopment, err = parseBool("LOG_DEVELOPMENT", false); err != nil {
		return nil, err
	}
	if cfg.Apollo.UseMock, err = parseBool("APOLLO_USE_MOCK", true); err != nil {
		return nil, err
	}

	delay, err := time.ParseDuration(getEnv("APOLLO_MOCK_DELAY", defaultMockDelay.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid APOLLO_MOCK_DELAY value: %w", err)
	}
	if delay <= 0 {
		delay = defaultMockDelay
	}
	cfg.Apollo.MockDelay = delay

	timeout, err := time.ParseDuration(getEnv("VENDOR_HTTP_TIMEOUT", "15s"))
	if err != nil || timeout < 0 {
		return nil, fmt.Errorf("invalid VENDOR_HTTP_TIMEOUT value: %q", os.Getenv("VENDOR_HTTP_TIMEOUT"))
	}
	cfg.VendorHTTPTimeout = timeout

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_ASSET_SEARCH", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_ASSET_SEARCH value: %w", err)
	}
	cfg.RateLimitAssets = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %q", key, raw)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
