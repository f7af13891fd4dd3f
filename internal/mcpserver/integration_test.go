package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refsOAS3 is a small OpenAPI 3.0 document with local and external refs,
// shared across the tool tests.
const refsOAS3 = `{
  "openapi": "3.0.3",
  "info": {"title": "Test API", "version": "1.0.0"},
  "servers": [{"url": "https://api.example.com"}],
  "tags": [{"name": "pets"}],
  "x-owner": "platform",
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "responses": {
          "200": {
            "description": "OK",
            "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Pet"}}}}
          },
          "default": {"$ref": "#/components/responses/Error"}
        }
      },
      "post": {
        "operationId": "createPet",
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}},
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/pets/{petId}": {
      "get": {
        "operationId": "getPet",
        "parameters": [{"$ref": "common.json#/parameters/PetId"}],
        "responses": {
          "200": {
            "description": "OK",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {"type": "object", "properties": {"id": {"type": "integer"}}}
    },
    "responses": {
      "Error": {"description": "error"}
    }
  }
}`

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := newServer()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 2)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %s has no input schema", tool.Name)
	}
	assert.ElementsMatch(t, []string{"decode", "refs"}, names)
}

func TestIntegration_CallTool_Decode(t *testing.T) {
	specCache.Purge()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "decode",
		Arguments: map[string]any{
			"spec": map[string]any{"content": refsOAS3},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "decode should succeed on a valid document")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "OAS 3.x", structured["kind"])
	assert.Equal(t, "3.0.3", structured["version"])
	assert.Equal(t, "Test API", structured["title"])
	assert.Equal(t, "json", structured["format"])
	assert.Equal(t, []any{"x-owner"}, structured["extensions"])

	stats, ok := structured["stats"].(map[string]any)
	require.True(t, ok, "stats should be an object")
	assert.Equal(t, float64(2), stats["paths"])
	assert.Equal(t, float64(3), stats["operations"])
	assert.Equal(t, float64(1), stats["schemas"])
	assert.Equal(t, float64(5), stats["refs"])
}

func TestIntegration_CallTool_Refs(t *testing.T) {
	specCache.Purge()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "refs",
		Arguments: map[string]any{
			"spec":     map[string]any{"content": refsOAS3},
			"group_by": "locality",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(5), structured["total"])
	groups, ok := structured["groups"].([]any)
	require.True(t, ok, "groups should be an array")
	require.Len(t, groups, 2)
	first, ok := groups[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "local", first["key"])
	assert.Equal(t, float64(4), first["count"])
}

func TestIntegration_CallTool_Error_InvalidSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "decode",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": `{"info": {"title": "no version key"}}`,
			},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	assert.True(t, result.IsError, "decode should return IsError when no format matches")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.Contains(t, text.Text, "no document variant matched")
}

func TestIntegration_CallTool_Error_MissingSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "refs",
		Arguments: map[string]any{
			"spec": map[string]any{},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	assert.True(t, result.IsError, "refs should return IsError when no spec source is provided")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
