package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Exact path, "*" segments, or a "/"-terminated prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig reads the limiter settings from RATE_LIMIT_* environment
// variables. Malformed values fall back to their defaults.
func LoadConfig() *Config {
	if !env("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    env("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   env("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: env("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		BucketTTL:       env("RATE_LIMIT_BUCKET_TTL", time.Hour, time.ParseDuration),
		Whitelist:       parseIPList(env("RATE_LIMIT_WHITELIST", "", asString)),
		Blacklist:       parseIPList(env("RATE_LIMIT_BLACKLIST", "", asString)),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Exports are the
// most expensive requests and get the strictest budget.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: rendering and import
		{Path: "/sessions/*/export.pdf", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/sessions/*/import", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/sessions/*/export.json", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 2: session creation and edits
		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/sessions/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/sessions/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/sessions/", Method: "DELETE", Limit: 300, Window: time.Minute, Burst: 30},

		// Tier 3: reads use the default limit; /health is unlimited
	}
}

// env reads key with parse, falling back to def when unset or malformed.
func env[T any](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

func asString(s string) (string, error) { return s, nil }

// parseIPList parses a comma-separated list of client addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
