package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a rate limit for one endpoint. A trailing "/" in Path enables
// prefix matching; a Limit of zero or less means unlimited.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter settings.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the built-in limits. The recommend endpoint runs
// every engine and is held tighter than the single-engine endpoints.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			{Path: "/v1/recommend", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/v1/resume-score", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// LoadConfig reads limiter settings from environment variables, falling back
// to the defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("ADVISOR_RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}
	cfg.DefaultLimit = getEnvInt("ADVISOR_RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("ADVISOR_RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("ADVISOR_RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

// match finds the rule for a path and method: exact first, then prefix, then
// the default limit.
func (c *Config) match(path, method string) Rule {
	for _, rule := range c.Rules {
		if rule.Path == path && (rule.Method == "" || rule.Method == method) {
			return rule
		}
	}
	for _, rule := range c.Rules {
		if strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) &&
			(rule.Method == "" || rule.Method == method) {
			return rule
		}
	}
	return Rule{Path: "", Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
