package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaContent = `module: m
namespace: urn:m
prefix: m
data:
  - name: host
    kind: leaf
    type: {name: string, kind: string}
`

func TestDocInput_ResolveFile(t *testing.T) {
	moduleCache.reset()
	input := docInput{File: "../../testdata/interfaces.yaml"}
	mod, err := input.resolveModule()
	require.NoError(t, err)
	require.NotNil(t, mod)
	assert.Equal(t, "interfaces", mod.Name)
}

func TestDocInput_ResolveContent(t *testing.T) {
	moduleCache.reset()
	input := docInput{Content: schemaContent}
	mod, err := input.resolveModule()
	require.NoError(t, err)
	require.NotNil(t, mod)
	assert.Equal(t, "m", mod.Name)
}

func TestDocInput_ResolveNoneProvided(t *testing.T) {
	input := docInput{}
	_, err := input.resolveModule()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocInput_ResolveBothProvided(t *testing.T) {
	input := docInput{File: "foo.yaml", Content: "bar"}
	_, err := input.resolveModule()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocInput_ResolveFileNotFound(t *testing.T) {
	moduleCache.reset()
	input := docInput{File: "/nonexistent/path.yaml"}
	_, err := input.resolveModule()
	assert.Error(t, err)
}

func TestDocInput_InlineSizeLimit(t *testing.T) {
	oldSize := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	defer func() { cfg.MaxInlineSize = oldSize }()

	input := docInput{Content: strings.Repeat("x", 17)}
	_, err := input.resolveModule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestModuleCache_HitOnSameFile(t *testing.T) {
	moduleCache.reset()
	input := docInput{File: "../../testdata/interfaces.yaml"}

	// First call populates cache.
	mod1, err := input.resolveModule()
	require.NoError(t, err)
	assert.Equal(t, 1, moduleCache.size())

	// Second call should return the same pointer (cache hit).
	mod2, err := input.resolveModule()
	require.NoError(t, err)
	assert.Same(t, mod1, mod2, "expected same pointer from cache hit")
}

func TestModuleCache_MissOnModifiedFile(t *testing.T) {
	moduleCache.reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(schemaContent), 0o600))

	input := docInput{File: path}
	mod1, err := input.resolveModule()
	require.NoError(t, err)

	// Rewrite the file with a later mtime; the old entry no longer matches.
	time.Sleep(10 * time.Millisecond)
	modified := strings.Replace(schemaContent, "module: m", "module: m2", 1)
	require.NoError(t, os.WriteFile(path, []byte(modified), 0o600))
	now := time.Now()
	require.NoError(t, os.Chtimes(path, now, now))

	mod2, err := input.resolveModule()
	require.NoError(t, err)
	assert.NotSame(t, mod1, mod2)
	assert.Equal(t, "m2", mod2.Name)
}

func TestModuleCache_HitOnSameContent(t *testing.T) {
	moduleCache.reset()
	input := docInput{Content: schemaContent}

	mod1, err := input.resolveModule()
	require.NoError(t, err)
	mod2, err := input.resolveModule()
	require.NoError(t, err)
	assert.Same(t, mod1, mod2)
}

func TestModuleCache_Disabled(t *testing.T) {
	moduleCache.reset()
	oldEnabled := cfg.CacheEnabled
	cfg.CacheEnabled = false
	defer func() { cfg.CacheEnabled = oldEnabled }()

	input := docInput{Content: schemaContent}
	_, err := input.resolveModule()
	require.NoError(t, err)
	assert.Equal(t, 0, moduleCache.size())
}

func TestModuleCache_EvictsOldestAtCapacity(t *testing.T) {
	moduleCache.reset()
	oldMax := moduleCache.maxSize
	moduleCache.maxSize = 2
	defer func() { moduleCache.maxSize = oldMax }()

	for _, name := range []string{"a", "b", "c"} {
		content := strings.Replace(schemaContent, "module: m", "module: "+name, 1)
		_, err := docInput{Content: content}.resolveModule()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, moduleCache.size())
}

func TestModuleCache_SweepRemovesExpired(t *testing.T) {
	moduleCache.reset()
	input := docInput{Content: schemaContent}
	_, err := input.resolveModule()
	require.NoError(t, err)
	require.Equal(t, 1, moduleCache.size())

	// Force the single entry to be expired, then sweep.
	moduleCache.mu.Lock()
	for _, e := range moduleCache.entries {
		e.expiresAt = time.Now().Add(-time.Second)
	}
	moduleCache.mu.Unlock()

	moduleCache.sweep()
	assert.Equal(t, 0, moduleCache.size())
}
