package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/internal/testutil"
	"github.com/erraggy/oasbind/oas3"
)

func refsTestSpec(t *testing.T) string {
	t.Helper()
	doc := testutil.NewDetailedOAS3Document()
	external := codec.NewRef[oas3.Schema]("common.json#/Error")
	doc.Paths["/pets"].Get.Responses["default"] = codec.NewInline(&oas3.Response{
		Description: "error",
		Content:     map[string]*oas3.MediaType{"application/json": {Schema: &external}},
	})
	return testutil.WriteTempJSON(t, doc)
}

func TestSetupRefsFlags(t *testing.T) {
	fs, flags := SetupRefsFlags()
	assert.Equal(t, FormatText, flags.Format)
	assert.False(t, flags.LocalOnly)

	require.NoError(t, fs.Parse([]string{"--local", "--format", "json", "api.json"}))
	assert.True(t, flags.LocalOnly)
	assert.Equal(t, FormatJSON, flags.Format)
}

func TestHandleRefs_Errors(t *testing.T) {
	assert.Error(t, HandleRefs(nil))
	assert.NoError(t, HandleRefs([]string{"--help"}))
	assert.Error(t, HandleRefs([]string{"--format", "xml", "api.json"}))
}

func TestHandleRefs_Text(t *testing.T) {
	path := refsTestSpec(t)

	out := captureStdout(t, func() {
		require.NoError(t, HandleRefs([]string{path}))
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "PATH"))
	assert.Contains(t, lines[1], "paths./pets.get.responses.200.content.application/json.schema")
	assert.Contains(t, lines[1], "components/schemas")
	assert.Contains(t, lines[2], "common.json#/Error")
}

func TestHandleRefs_Quiet(t *testing.T) {
	path := refsTestSpec(t)

	out := captureStdout(t, func() {
		require.NoError(t, HandleRefs([]string{"-q", path}))
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{
		"paths./pets.get.responses.200.content.application/json.schema",
		"#/components/schemas/Pet",
		"components/schemas",
	}, strings.Split(lines[0], "\t"))
}

func TestHandleRefs_JSON(t *testing.T) {
	path := refsTestSpec(t)

	out := captureStdout(t, func() {
		require.NoError(t, HandleRefs([]string{"--format", "json", path}))
	})
	var sites []codec.RefSite
	require.NoError(t, json.Unmarshal([]byte(out), &sites))
	require.Len(t, sites, 2)
	assert.True(t, sites[0].Local)
	assert.False(t, sites[1].Local)
	assert.Equal(t, "#/paths/~1pets/get/responses/default/content/application~1json/schema", sites[1].Pointer)

	out = captureStdout(t, func() {
		require.NoError(t, HandleRefs([]string{"--format", "json", "--local", path}))
	})
	sites = nil
	require.NoError(t, json.Unmarshal([]byte(out), &sites))
	assert.Len(t, sites, 1)
}
