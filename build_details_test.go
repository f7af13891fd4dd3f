package oasbind

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
// In development, it defaults to "dev".
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result, "Version() should not return empty string")
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestCommit(t *testing.T) {
	result := Commit()

	assert.NotEmpty(t, result)
	if result != "unknown" {
		assert.GreaterOrEqual(t, len(result), 7,
			"Commit() should be at least 7 characters for a git hash, got: %s", result)
		for _, ch := range result {
			assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f'),
				"Commit() should contain only hex characters, got: %s", result)
		}
	}
}

func TestBuildTime(t *testing.T) {
	result := BuildTime()

	assert.NotEmpty(t, result)
	if result != "unknown" {
		assert.Contains(t, result, "T",
			"BuildTime() should be RFC3339 format containing 'T', got: %s", result)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

// TestBuildInfo verifies that BuildInfo() returns a formatted string with all build metadata.
func TestBuildInfo(t *testing.T) {
	result := BuildInfo()

	assert.Contains(t, result, "Version: "+Version())
	assert.Contains(t, result, "Commit: "+Commit())
	assert.Contains(t, result, "Build Time: "+BuildTime())
	assert.Contains(t, result, "Go Version: "+GoVersion())
	assert.Len(t, strings.Split(result, "\n"), 4)
}
