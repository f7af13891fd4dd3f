package oas2

import (
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The re-encoded petstore must be readable as a kin-openapi Swagger 2.0 document.
func TestInterop_KinOpenAPI2(t *testing.T) {
	doc := loadPetstore(t)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var loaded openapi2.T
	require.NoError(t, json.Unmarshal(out, &loaded))
	assert.Equal(t, "2.0", loaded.Swagger)
	assert.Equal(t, "Swagger Petstore", loaded.Info.Title)
	assert.Len(t, loaded.Paths, len(doc.Paths))
	assert.Len(t, loaded.Definitions, len(doc.Definitions))
}
