// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
)

// NewSimpleOAS2Document creates a minimal OAS 2.0 document for testing.
// Contains the required fields plus host, basePath and schemes.
func NewSimpleOAS2Document() *oas2.Document {
	return &oas2.Document{
		Swagger: "2.0",
		Info: &oas2.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Host:     "api.example.com",
		BasePath: "/v1",
		Schemes:  []string{"https"},
		Paths:    make(map[string]*oas2.PathItem),
	}
}

// NewDetailedOAS2Document creates an OAS 2.0 document with one operation,
// one definition and a single reference between them.
func NewDetailedOAS2Document() *oas2.Document {
	doc := NewSimpleOAS2Document()
	doc.Definitions = map[string]codec.RefOr[oas2.Schema]{
		"Pet": codec.NewInline(&oas2.Schema{
			Type: "object",
			Properties: map[string]codec.RefOr[oas2.Schema]{
				"id":   codec.NewInline(&oas2.Schema{Type: "integer"}),
				"name": codec.NewInline(&oas2.Schema{Type: "string"}),
			},
		}),
	}
	petRef := codec.NewRef[oas2.Schema]("#/definitions/Pet")
	doc.Paths = map[string]*oas2.PathItem{
		"/pets": {
			Get: &oas2.Operation{
				Summary:     "List pets",
				OperationID: "listPets",
				Responses: map[string]codec.RefOr[oas2.Response]{
					"200": codec.NewInline(&oas2.Response{Description: "ok", Schema: &petRef}),
				},
			},
		},
	}
	doc.Extensions = codec.Extensions{"x-owner": "platform"}
	return doc
}

// NewSimpleOAS3Document creates a minimal OAS 3.x document for testing.
// Contains the required fields plus one server.
func NewSimpleOAS3Document() *oas3.Document {
	return &oas3.Document{
		OpenAPI: "3.0.3",
		Info: &oas3.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Servers: []*oas3.Server{
			{
				URL:         "https://api.example.com/v1",
				Description: "Production server",
			},
		},
		Paths: make(map[string]*oas3.PathItem),
	}
}

// NewDetailedOAS3Document creates an OAS 3.x document with one operation,
// one component schema and a single reference between them.
func NewDetailedOAS3Document() *oas3.Document {
	doc := NewSimpleOAS3Document()
	doc.Components = &oas3.Components{
		Schemas: map[string]codec.RefOr[oas3.Schema]{
			"Pet": codec.NewInline(&oas3.Schema{
				Type: "object",
				Properties: map[string]codec.RefOr[oas3.Schema]{
					"id":   codec.NewInline(&oas3.Schema{Type: "integer"}),
					"name": codec.NewInline(&oas3.Schema{Type: "string"}),
				},
			}),
		},
	}
	petRef := codec.NewRef[oas3.Schema]("#/components/schemas/Pet")
	doc.Paths = map[string]*oas3.PathItem{
		"/pets": {
			Get: &oas3.Operation{
				Summary:     "List pets",
				OperationID: "listPets",
				Responses: map[string]codec.RefOr[oas3.Response]{
					"200": codec.NewInline(&oas3.Response{
						Description: "ok",
						Content: map[string]*oas3.MediaType{
							"application/json": {Schema: &petRef},
						},
					}),
				},
			},
		},
	}
	doc.Extensions = codec.Extensions{"x-owner": "platform"}
	return doc
}

// WriteTempYAML encodes a document and writes it as YAML to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	// JSON text is YAML; going through a node keeps member order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		t.Fatalf("Failed to read JSON as YAML: %v", err)
	}
	out, err := yaml.Marshal(&node)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, out, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
