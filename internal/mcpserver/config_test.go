package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearYANGTOOLSEnv clears all YANGTOOLS_* env vars to isolate tests from
// the ambient environment.
func clearYANGTOOLSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"YANGTOOLS_CACHE_ENABLED", "YANGTOOLS_CACHE_MAX_SIZE",
		"YANGTOOLS_CACHE_FILE_TTL", "YANGTOOLS_CACHE_CONTENT_TTL",
		"YANGTOOLS_CACHE_SWEEP_INTERVAL",
		"YANGTOOLS_ISSUE_LIMIT", "YANGTOOLS_MAX_LIMIT",
		"YANGTOOLS_MAX_INLINE_SIZE",
		"YANGTOOLS_VALIDATE_MODE", "YANGTOOLS_VALIDATE_NO_WARNINGS",
		"YANGTOOLS_VALIDATE_CHECK_OBSOLETE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearYANGTOOLSEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.IssueLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Empty(t, c.ValidateMode)
	assert.False(t, c.ValidateNoWarnings)
	assert.False(t, c.ValidateCheckObsolete)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearYANGTOOLSEnv(t)
	t.Setenv("YANGTOOLS_CACHE_ENABLED", "false")
	t.Setenv("YANGTOOLS_CACHE_MAX_SIZE", "50")
	t.Setenv("YANGTOOLS_CACHE_FILE_TTL", "30m")
	t.Setenv("YANGTOOLS_CACHE_CONTENT_TTL", "10m")
	t.Setenv("YANGTOOLS_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("YANGTOOLS_ISSUE_LIMIT", "200")
	t.Setenv("YANGTOOLS_MAX_LIMIT", "500")
	t.Setenv("YANGTOOLS_MAX_INLINE_SIZE", "5242880")
	t.Setenv("YANGTOOLS_VALIDATE_MODE", "config")
	t.Setenv("YANGTOOLS_VALIDATE_NO_WARNINGS", "true")
	t.Setenv("YANGTOOLS_VALIDATE_CHECK_OBSOLETE", "true")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 200, c.IssueLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, "config", c.ValidateMode)
	assert.True(t, c.ValidateNoWarnings)
	assert.True(t, c.ValidateCheckObsolete)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearYANGTOOLSEnv(t)
	t.Setenv("YANGTOOLS_CACHE_MAX_SIZE", "banana")
	t.Setenv("YANGTOOLS_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("YANGTOOLS_CACHE_ENABLED", "maybe")
	t.Setenv("YANGTOOLS_ISSUE_LIMIT", "-5")
	t.Setenv("YANGTOOLS_MAX_LIMIT", "0")
	t.Setenv("YANGTOOLS_MAX_INLINE_SIZE", "abc")
	t.Setenv("YANGTOOLS_VALIDATE_MODE", "typo")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.IssueLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Empty(t, c.ValidateMode, "invalid mode should fall back to empty")
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearYANGTOOLSEnv(t)
	// Only override some values; others stay at defaults.
	t.Setenv("YANGTOOLS_ISSUE_LIMIT", "42")
	t.Setenv("YANGTOOLS_CACHE_CONTENT_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.IssueLimit)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	// Unchanged defaults:
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
}
