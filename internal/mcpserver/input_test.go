package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erraggy/oasbind/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreYAML = "../../parser/testdata/petstore-v3.yaml"

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.Purge()
	input := specInput{File: petstoreYAML}
	result, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, parser.SourceFormatYAML, result.SourceFormat)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.Purge()
	content := `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`
	input := specInput{Content: content}
	result, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Equal(t, "Test", result.Document.Title())
}

func TestSpecInput_ResolveNoneProvided(t *testing.T) {
	input := specInput{}
	_, err := input.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveMultipleProvided(t *testing.T) {
	input := specInput{File: "foo.yaml", Content: "bar"}
	_, err := input.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	specCache.Purge()
	input := specInput{File: "/nonexistent/path.yaml"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestSpecInput_InlineSizeLimit(t *testing.T) {
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = orig })

	_, err := specInput{Content: `{"openapi":"3.0.0"}`}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	specCache.Purge()
	input := specInput{File: petstoreYAML}

	// First call populates cache.
	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.Len())

	// Second call should return the same pointer (cache hit).
	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.Purge()

	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	content1 := []byte(`openapi: "3.0.0"
info:
  title: Test V1
  version: "1.0"
paths: {}
`)
	require.NoError(t, os.WriteFile(path, content1, 0o644))

	input := specInput{File: path}
	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Test V1", result1.Document.Title())

	content2 := []byte(`openapi: "3.0.0"
info:
  title: Test V2
  version: "2.0"
paths: {}
`)
	require.NoError(t, os.WriteFile(path, content2, 0o644))

	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Equal(t, "Test V2", result2.Document.Title())
}

func TestSpecCache_ContentHash(t *testing.T) {
	specCache.Purge()
	input := specInput{Content: `{"openapi":"3.0.0","info":{"title":"Hash Test","version":"1.0"},"paths":{}}`}

	result1, err := input.resolve()
	require.NoError(t, err)

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2)
}

func TestSpecCache_SkippedWithExtraOptions(t *testing.T) {
	specCache.Purge()
	input := specInput{Content: `{"openapi":"3.0.0","info":{"title":"T","version":"1.0"},"paths":{}}`}

	opts, err := kindOption("v3")
	require.NoError(t, err)
	_, err = input.resolve(opts...)
	require.NoError(t, err)
	assert.Equal(t, 0, specCache.Len())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.Purge()

	// Insert 11 specs into a cache of size 10.
	var firstKey string
	for i := range 11 {
		content := `openapi: "3.0.0"
info:
  title: "Spec ` + string(rune('A'+i)) + `"
  version: "1.0"
paths: {}
`
		if i == 0 {
			firstKey = makeCacheKey(specInput{Content: content}, nil)
		}
		_, err := specInput{Content: content}.resolve()
		require.NoError(t, err)
	}

	assert.Equal(t, 10, specCache.Len())
	_, ok := specCache.Get(firstKey)
	assert.False(t, ok, "expected oldest entry to be evicted")
}

func TestNewSpecCache(t *testing.T) {
	tests := []struct {
		name     string
		cfg      serverConfig
		wait     time.Duration
		wantA    bool
		wantSize int
	}{
		{"ttl expires entries", serverConfig{CacheMaxSize: 4, CacheTTL: 20 * time.Millisecond}, 60 * time.Millisecond, false, 0},
		{"live entries are kept", serverConfig{CacheMaxSize: 4, CacheTTL: time.Hour}, 0, true, 2},
		{"size evicts least recent", serverConfig{CacheMaxSize: 1, CacheTTL: time.Hour}, 0, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newSpecCache(&tt.cfg)
			c.Add("a", &parser.ParseResult{})
			c.Add("b", &parser.ParseResult{})
			time.Sleep(tt.wait)

			_, ok := c.Get("a")
			assert.Equal(t, tt.wantA, ok)
			if tt.wantSize > 0 {
				assert.Equal(t, tt.wantSize, c.Len())
			}
		})
	}
}

func TestSpecCache_ExpiredEntryReparsed(t *testing.T) {
	orig := specCache
	specCache = newSpecCache(&serverConfig{CacheMaxSize: 4, CacheTTL: 20 * time.Millisecond})
	t.Cleanup(func() { specCache = orig })

	input := specInput{Content: `{"openapi":"3.0.0","info":{"title":"TTL","version":"1.0"},"paths":{}}`}
	result1, err := input.resolve()
	require.NoError(t, err)

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2)

	time.Sleep(60 * time.Millisecond)
	result3, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, result1, result3)
	assert.Equal(t, "TTL", result3.Document.Title())
}

func TestKindOption(t *testing.T) {
	tests := []struct {
		as      string
		wantLen int
		wantErr bool
	}{
		{"", 0, false},
		{"auto", 0, false},
		{"v2", 1, false},
		{"v3", 1, false},
		{"v4", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.as, func(t *testing.T) {
			opts, err := kindOption(tt.as)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.wantLen)
		})
	}
}
