// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasbind decoding as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/oasbind"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverInstructions is sent to clients on initialize.
func serverInstructions() string {
	var b strings.Builder
	b.WriteString("oasbind MCP server: decodes OpenAPI 2.0 and 3.x documents into typed form and reports their structure and $ref sites. References are never fetched or resolved.\n\n")
	b.WriteString("Configuration: all defaults are set through OASBIND_* environment variables in your MCP client config.\n\n")
	b.WriteString("Settings:\n")
	for _, line := range EnvHelp() {
		b.WriteString("- " + line + "\n")
	}
	b.WriteString("\nCaching: decoded documents are cached per session. File entries use path+mtime as key, inline content uses its SHA-256. Entries expire after OASBIND_CACHE_TTL. Calls that force a format with `as` bypass the cache.")
	return b.String()
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasbind", Version: oasbind.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions(),
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "decode",
		Description: "Decode an OpenAPI 2.0 or 3.x document. The format is detected from the swagger/openapi key unless `as` forces v2 or v3. Returns the detected format, spec version, title, counts (paths, operations, schemas, refs), root extension keys and decode warnings. Use full=true to also receive the document re-encoded as JSON; only do this for small documents.",
	}, handleDecode)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "refs",
		Description: "List the $ref sites of a decoded OpenAPI document without resolving them. By default returns unique ref targets ranked by reference count. Use detail=true for individual sites with dotted path and JSON pointer. Filter with target (supports * and ? glob, e.g. *schemas/Pet), section (e.g. components/schemas, definitions) or local=true. Use group_by=section or group_by=locality for distribution counts.",
	}, handleRefs)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.RefsLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.RefsLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined with detail.
func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if detail {
		return fmt.Errorf("cannot use both group_by and detail")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchRefGlob never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}
