package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/erraggy/oasbind/parser"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON, or YAML when enabled)"`
}

// specCache holds decoded documents for the session. File inputs are keyed
// by (absolutePath, modTime). Content inputs are keyed by a SHA-256 hash.
var specCache = newSpecCache(cfg)

// newSpecCache sizes the cache from c. Entries older than CacheTTL are never
// returned; a non-positive TTL keeps them until evicted.
func newSpecCache(c *serverConfig) *expirable.LRU[string, *parser.ParseResult] {
	return expirable.NewLRU[string, *parser.ParseResult](c.CacheMaxSize, nil, c.CacheTTL)
}

// makeCacheKey creates a cache key for the given spec input.
// Returns empty string when extra parser options are provided since we cannot
// distinguish option sets.
func makeCacheKey(s specInput, extraOpts []parser.Option) string {
	if len(extraOpts) > 0 {
		return ""
	}

	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve decodes the document from whichever input was provided, using the
// cache when enabled. Additional parser options disable caching for the call.
func (s specInput) resolve(extraOpts ...parser.Option) (*parser.ParseResult, error) {
	if (s.File == "") == (s.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASBIND_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(s, extraOpts)
	}
	if key != "" {
		if cached, ok := specCache.Get(key); ok {
			return cached, nil
		}
	}

	opts := []parser.Option{
		parser.WithExtensionPolicy(cfg.ExtensionPolicy),
		parser.WithYAML(cfg.AllowYAML),
	}
	if s.File != "" {
		opts = append(opts, parser.WithFilePath(s.File))
	} else {
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)), parser.WithSourceName("content"))
	}
	opts = append(opts, extraOpts...)

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		specCache.Add(key, result)
	}
	return result, nil
}

// kindOption turns a tool's "as" argument into a parser option. Detection
// needs no option, which keeps the call cacheable.
func kindOption(as string) ([]parser.Option, error) {
	kind, err := parser.ParseKind(as)
	if err != nil {
		return nil, err
	}
	if kind == parser.KindUnknown {
		return nil, nil
	}
	return []parser.Option{parser.WithKind(kind)}, nil
}
