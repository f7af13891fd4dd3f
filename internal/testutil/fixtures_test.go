package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
)

func TestNewSimpleOAS2Document(t *testing.T) {
	doc := NewSimpleOAS2Document()

	assert.Equal(t, "2.0", doc.Swagger)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, "api.example.com", doc.Host)
	assert.NotNil(t, doc.Paths, "Paths map should be initialized")
	assert.Empty(t, doc.Paths)
}

func TestNewDetailedOAS2Document(t *testing.T) {
	doc := NewDetailedOAS2Document()

	require.Contains(t, doc.Paths, "/pets")
	assert.Equal(t, "listPets", doc.Paths["/pets"].Get.OperationID)
	require.Contains(t, doc.Definitions, "Pet")

	sites := doc.Refs()
	require.Len(t, sites, 1)
	assert.Equal(t, "#/definitions/Pet", sites[0].Ref)
}

func TestNewSimpleOAS3Document(t *testing.T) {
	doc := NewSimpleOAS3Document()

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com/v1", doc.Servers[0].URL)
	assert.Empty(t, doc.Paths)
	assert.Nil(t, doc.Components)
}

func TestNewDetailedOAS3Document(t *testing.T) {
	doc := NewDetailedOAS3Document()

	require.NotNil(t, doc.Components)
	require.Contains(t, doc.Components.Schemas, "Pet")

	sites := doc.Refs()
	require.Len(t, sites, 1)
	assert.Equal(t, "#/components/schemas/Pet", sites[0].Ref)
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewDetailedOAS3Document())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back oas3.Document
	require.NoError(t, json.Unmarshal(data, &back))
	again, err := json.Marshal(&back)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
	assert.Len(t, back.Refs(), 1)
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewDetailedOAS2Document())
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(data, &generic))
	assert.Equal(t, "2.0", generic["swagger"])
	assert.Equal(t, "platform", generic["x-owner"])
	assert.Contains(t, generic, "definitions")

	var back oas2.Document
	asJSON, err := json.Marshal(generic)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(asJSON, &back))
	assert.Equal(t, "listPets", back.Paths["/pets"].Get.OperationID)
}
