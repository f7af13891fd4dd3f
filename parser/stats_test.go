package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
)

func TestGetDocumentStats(t *testing.T) {
	t.Run("OAS 2.0", func(t *testing.T) {
		doc, err := DecodeFile("testdata/petstore-v2.json")
		require.NoError(t, err)
		stats := GetDocumentStats(doc)
		assert.Equal(t, 2, stats.PathCount)
		assert.Equal(t, 2, stats.OperationCount)
		assert.Equal(t, 3, stats.SchemaCount)
		assert.Equal(t, len(doc.Refs()), stats.RefCount)
		assert.Positive(t, stats.RefCount)
	})

	t.Run("OAS 3.x", func(t *testing.T) {
		doc, err := DecodeFile("testdata/petstore-v3.json")
		require.NoError(t, err)
		assert.Equal(t, DocumentStats{PathCount: 2, OperationCount: 2, SchemaCount: 6, RefCount: 11}, GetDocumentStats(doc))
	})

	t.Run("nil path items and components", func(t *testing.T) {
		v2 := NewOAS2Document(&oas2.Document{Swagger: "2.0", Paths: map[string]*oas2.PathItem{"/a": nil}})
		assert.Equal(t, DocumentStats{PathCount: 1}, GetDocumentStats(v2))

		v3 := NewOAS3Document(&oas3.Document{OpenAPI: "3.0.0", Paths: map[string]*oas3.PathItem{
			"/a": {Get: &oas3.Operation{}, Delete: &oas3.Operation{}},
			"/b": nil,
		}})
		assert.Equal(t, DocumentStats{PathCount: 2, OperationCount: 2}, GetDocumentStats(v3))
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Equal(t, DocumentStats{}, GetDocumentStats(&Document{}))
	})
}
