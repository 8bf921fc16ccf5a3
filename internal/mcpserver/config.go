package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Result pagination.
	IssueLimit int
	MaxLimit   int

	// Inline document size cap.
	MaxInlineSize int64

	// Validate tool defaults.
	ValidateMode          string
	ValidateNoWarnings    bool
	ValidateCheckObsolete bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from YANGTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:          envBool("YANGTOOLS_CACHE_ENABLED", true),
		CacheMaxSize:          envInt("YANGTOOLS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:          envDuration("YANGTOOLS_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:       envDuration("YANGTOOLS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval:    envDuration("YANGTOOLS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		IssueLimit:            envInt("YANGTOOLS_ISSUE_LIMIT", 100),
		MaxLimit:              envInt("YANGTOOLS_MAX_LIMIT", 1000),
		MaxInlineSize:         envInt64("YANGTOOLS_MAX_INLINE_SIZE", 10*1024*1024),
		ValidateMode:          envMode("YANGTOOLS_VALIDATE_MODE"),
		ValidateNoWarnings:    envBool("YANGTOOLS_VALIDATE_NO_WARNINGS", false),
		ValidateCheckObsolete: envBool("YANGTOOLS_VALIDATE_CHECK_OBSOLETE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envMode(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if _, err := parseMode(v); err != nil {
		slog.Warn("invalid mode env var, ignoring", "key", key, "value", v)
		return ""
	}
	return v
}
