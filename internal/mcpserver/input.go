package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openmgmt/yangtools/parser"
	"github.com/openmgmt/yangtools/schema"
)

// docInput represents the two ways a YAML document can be provided to a
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML document content"`
}

// cacheEntry holds a cached compiled module with LRU ordering and TTL expiry.
type cacheEntry struct {
	module    *schema.Module
	insertAt  time.Time
	expiresAt time.Time
}

// moduleCacheStore provides a session-scoped cache for compiled schema
// modules. File inputs are keyed by (absolutePath, modTime), so editing the
// file invalidates the entry. Content inputs are keyed by a SHA-256 hash.
// Entries have per-type TTLs and a background sweeper removes expired
// entries. Instance documents are never cached; they are cheap to reparse
// and validation runs want a fresh tree each call.
type moduleCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var moduleCache = &moduleCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached module or nil. Expired entries are lazily removed.
func (c *moduleCacheStore) get(key string) *schema.Module {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.module
	}
	return nil
}

// putWithTTL stores a module with a specific TTL, evicting the oldest entry
// if at capacity.
func (c *moduleCacheStore) putWithTTL(key string, mod *schema.Module, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{module: mod, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *moduleCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes
// expired entries. Safe to call multiple times; only the first call spawns
// a sweeper. It stops when ctx is cancelled.
func (c *moduleCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	var sweeping atomic.Bool
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !sweeping.CompareAndSwap(false, true) {
					continue
				}
				c.sweep()
				sweeping.Store(false)
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *moduleCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *moduleCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given document input.
func makeCacheKey(d docInput) string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// check verifies exactly one source is set and enforces the inline size cap.
func (d docInput) check() error {
	count := 0
	if d.File != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}
	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set YANGTOOLS_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}
	return nil
}

// parseOptions translates the input into parser source options.
func (d docInput) parseOptions() []parser.Option {
	if d.File != "" {
		return []parser.Option{parser.WithFilePath(d.File)}
	}
	return []parser.Option{
		parser.WithBytes([]byte(d.Content)),
		parser.WithSourceName("inline"),
	}
}

// resolveModule compiles the schema document from whichever input was
// provided, using the cache for file and content inputs.
func (d docInput) resolveModule() (*schema.Module, error) {
	if err := d.check(); err != nil {
		return nil, err
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(d)
		if d.File != "" {
			ttl = cfg.CacheFileTTL
		} else {
			ttl = cfg.CacheContentTTL
		}
	}

	if key != "" {
		if cached := moduleCache.get(key); cached != nil {
			return cached, nil
		}
	}

	mod, err := parser.ParseSchema(d.parseOptions()...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		moduleCache.putWithTTL(key, mod, ttl)
	}

	return mod, nil
}
