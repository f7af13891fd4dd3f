package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasbind/codec"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Decode settings.
	ExtensionPolicy codec.ExtensionPolicy
	AllowYAML       bool
	MaxInlineSize   int64

	// Cache settings.
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// Result limits for the refs tool.
	RefsLimit int
	MaxLimit  int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// envVar documents one setting for EnvHelp.
type envVar struct {
	key, def, usage string
}

var envVars = []envVar{
	{"OASBIND_EXTENSION_POLICY", "all", "unknown member policy: all, prefix, strict"},
	{"OASBIND_ALLOW_YAML", "true", "accept YAML content and files"},
	{"OASBIND_MAX_INLINE_SIZE", "10485760", "largest inline content accepted, in bytes"},
	{"OASBIND_CACHE_ENABLED", "true", "cache decoded documents per session"},
	{"OASBIND_CACHE_MAX_SIZE", "10", "maximum cached documents"},
	{"OASBIND_CACHE_TTL", "15m", "cache entry lifetime"},
	{"OASBIND_REFS_LIMIT", "100", "default result limit for the refs tool"},
	{"OASBIND_MAX_LIMIT", "1000", "upper bound on any requested limit"},
}

// EnvHelp returns one line per supported environment variable.
func EnvHelp() []string {
	lines := make([]string, 0, len(envVars))
	for _, v := range envVars {
		lines = append(lines, v.key+" (default: "+v.def+") - "+v.usage)
	}
	return lines
}

// loadConfig reads configuration from OASBIND_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ExtensionPolicy: envPolicy("OASBIND_EXTENSION_POLICY", codec.ExtensionsCaptureAll),
		AllowYAML:       envBool("OASBIND_ALLOW_YAML", true),
		MaxInlineSize:   int64(envInt("OASBIND_MAX_INLINE_SIZE", 10*1024*1024)),
		CacheEnabled:    envBool("OASBIND_CACHE_ENABLED", true),
		CacheMaxSize:    envInt("OASBIND_CACHE_MAX_SIZE", 10),
		CacheTTL:        envDuration("OASBIND_CACHE_TTL", 15*time.Minute),
		RefsLimit:       envInt("OASBIND_REFS_LIMIT", 100),
		MaxLimit:        envInt("OASBIND_MAX_LIMIT", 1000),
	}
}

func envPolicy(key string, fallback codec.ExtensionPolicy) codec.ExtensionPolicy {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	p, err := codec.ParseExtensionPolicy(v)
	if err != nil {
		slog.Warn("invalid extension policy env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return p
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
