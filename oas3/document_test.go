package oas3

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oaserrors"
)

func loadPetstore(t *testing.T) *Document {
	t.Helper()
	data, err := os.ReadFile("testdata/petstore.json")
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return &doc
}

func TestDecode_Minimal(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`), &doc))

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "t", doc.Info.Title)
	assert.Equal(t, "1", doc.Info.Version)
	assert.NotNil(t, doc.Paths)
	assert.Empty(t, doc.Paths)
	assert.Nil(t, doc.Components)
	assert.Nil(t, doc.Extensions)
}

func TestDecode_Petstore(t *testing.T) {
	doc := loadPetstore(t)

	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	assert.Equal(t, codec.Extensions{"x-audience": "external"}, doc.Info.Extensions)
	assert.Equal(t, map[string]any{"timeout": json.Number("30"), "retries": json.Number("2.5")}, doc.Extensions["x-gateway"])

	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "api", doc.Servers[0].Variables["env"].Default)
	assert.Equal(t, []string{"api", "staging"}, doc.Servers[0].Variables["env"].Enum)

	get := doc.Paths["/pets"].Get
	require.NotNil(t, get)
	require.Len(t, get.Parameters, 2)
	assert.Equal(t, "#/components/parameters/limit", get.Parameters[0].Ref)
	tags := get.Parameters[1].Value
	require.NotNil(t, tags)
	assert.Equal(t, "array", tags.Schema.Value.Type)
	assert.Equal(t, "string", tags.Schema.Value.Items.Value.Type)
	assert.Equal(t, codec.Extensions{"x-example": "dog,cat"}, tags.Extensions)
	assert.Equal(t, codec.Extensions{"x-codegen-name": "listPets"}, get.Extensions)

	ok := get.Responses["200"].Value
	require.NotNil(t, ok)
	assert.Contains(t, ok.Headers, "X-Next-Page")
	assert.Equal(t, "#/components/schemas/Pets", ok.Content["application/json"].Schema.Ref)
	assert.Equal(t, "#/components/responses/Error", get.Responses["default"].Ref)

	post := doc.Paths["/pets"].Post
	require.NotNil(t, post)
	assert.Equal(t, "#/components/requestBodies/NewPet", post.RequestBody.Ref)
	assert.Equal(t, []SecurityRequirement{{"petstore_auth": {"write:pets"}}}, post.Security)

	cb := post.Callbacks["onCreated"].Value
	require.NotNil(t, cb)
	assert.Equal(t, codec.Extensions{"x-retry": json.Number("3")}, cb.Extensions)
	require.Contains(t, cb.Expressions, "{$request.body#/callbackUrl}")
	assert.NotNil(t, cb.Expressions["{$request.body#/callbackUrl}"].Post)

	assert.Equal(t, "shared.yaml#/paths/~1pets~1{id}", doc.Paths["/pets/{id}"].Ref)

	schemas := doc.Components.Schemas
	pet := schemas["Pet"].Value
	require.NotNil(t, pet)
	assert.Equal(t, []string{"id", "name"}, pet.Required)
	assert.Equal(t, 64, *pet.Properties["name"].Value.MaxLength)
	assert.True(t, pet.Properties["tag"].Value.Nullable)
	assert.Equal(t, codec.Extensions{"x-go-type": "Tag"}, pet.Properties["tag"].Value.Extensions)
	require.NotNil(t, pet.AdditionalProperties)
	assert.False(t, pet.AdditionalProperties.Allowed)
	assert.Nil(t, pet.AdditionalProperties.Schema)

	shape := schemas["Shape"].Value
	require.NotNil(t, shape)
	require.Len(t, shape.OneOf, 2)
	assert.Equal(t, "#/components/schemas/Square", shape.OneOf[1].Ref)
	assert.Equal(t, "kind", shape.Discriminator.PropertyName)
	assert.Equal(t, map[string]string{"circle": "#/components/schemas/Circle"}, shape.Discriminator.Mapping)

	square := schemas["Square"].Value
	require.NotNil(t, square.AdditionalProperties.Schema)
	assert.Equal(t, "number", square.AdditionalProperties.Schema.Value.Type)

	alias := schemas["Alias"]
	assert.True(t, alias.IsRef())
	assert.Nil(t, alias.Value)

	limit := doc.Components.Parameters["limit"].Value
	require.NotNil(t, limit)
	assert.Equal(t, json.Number("20"), limit.Schema.Value.Default)
	assert.InDelta(t, 100, *limit.Schema.Value.Maximum, 0)

	auth := doc.Components.SecuritySchemes["petstore_auth"].Value
	require.NotNil(t, auth)
	assert.Equal(t, "oauth2", auth.Type)
	assert.Len(t, auth.Flows.Implicit.Scopes, 2)
	assert.Equal(t, "header", doc.Components.SecuritySchemes["api_key"].Value.In)
}

func TestRoundTrip_Petstore(t *testing.T) {
	doc := loadPetstore(t)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var again Document
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, doc, &again)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	assert.Contains(t, generic, "x-gateway")
	assert.Contains(t, generic["info"], "x-audience")

	// The sibling of a reference is discarded on decode, so it is gone here.
	schemas := generic["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Pet"}, schemas["Alias"])
}

func TestDecode_RequiredFields(t *testing.T) {
	const head = `"openapi":"3.0.0","info":{"title":"t"}`
	tests := []struct {
		name string
		src  string
		path string
	}{
		{"missing openapi", `{"info":{"title":"t"},"paths":{}}`, "openapi"},
		{"missing info", `{"openapi":"3.0.0","paths":{}}`, "info"},
		{"missing paths", `{` + head + `}`, "paths"},
		{"missing title", `{"openapi":"3.0.0","info":{},"paths":{}}`, "info.title"},
		{"missing server url", `{` + head + `,"paths":{},"servers":[{"description":"d"}]}`, "servers[0].url"},
		{"missing variable default", `{` + head + `,"paths":{},"servers":[{"url":"u","variables":{"v":{}}}]}`, "servers[0].variables.v.default"},
		{"missing responses", `{` + head + `,"paths":{"/a":{"get":{}}}}`, "paths./a.get.responses"},
		{"missing parameter name", `{` + head + `,"paths":{"/a":{"parameters":[{"in":"query"}]}}}`, "paths./a.parameters[0].name"},
		{"missing request body content", `{` + head + `,"paths":{"/a":{"post":{"requestBody":{},"responses":{}}}}}`, "paths./a.post.requestBody.content"},
		{"missing response description", `{` + head + `,"paths":{},"components":{"responses":{"E":{}}}}`, "components.responses.E.description"},
		{"missing discriminator property", `{` + head + `,"paths":{},"components":{"schemas":{"S":{"discriminator":{}}}}}`, "components.schemas.S.discriminator.propertyName"},
		{"missing security type", `{` + head + `,"paths":{},"components":{"securitySchemes":{"k":{}}}}`, "components.securitySchemes.k.type"},
		{"missing flow scopes", `{` + head + `,"paths":{},"components":{"securitySchemes":{"o":{"type":"oauth2","flows":{"password":{"tokenUrl":"u"}}}}}}`, "components.securitySchemes.o.flows.password.scopes"},
		{"null callback expression", `{` + head + `,"paths":{},"components":{"callbacks":{"c":{"{$url}":null}}}}`, "components.callbacks.c.{$url}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			err := json.Unmarshal([]byte(tt.src), &doc)
			require.ErrorIs(t, err, oaserrors.ErrShapeMismatch)
			var se *oaserrors.ShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.PathString())
		})
	}
}

func TestDecode_WrongTypes(t *testing.T) {
	const head = `"openapi":"3.0.0","info":{"title":"t"}`
	tests := []struct {
		name     string
		src      string
		path     string
		expected string
	}{
		{"openapi not string", `{"openapi":3,"info":{"title":"t"},"paths":{}}`, "openapi", "string"},
		{"servers not array", `{` + head + `,"paths":{},"servers":{}}`, "servers", "array"},
		{"ref not string", `{` + head + `,"paths":{},"components":{"schemas":{"S":{"$ref":7}}}}`, "components.schemas.S.$ref", "string"},
		{"callback member not object", `{` + head + `,"paths":{},"components":{"callbacks":{"c":{"{$url}":[]}}}}`, "components.callbacks.c.{$url}", "object"},
		{"additionalProperties number", `{` + head + `,"paths":{},"components":{"schemas":{"S":{"additionalProperties":1}}}}`, "components.schemas.S.additionalProperties", "boolean or object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			err := json.Unmarshal([]byte(tt.src), &doc)
			var se *oaserrors.ShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.PathString())
			assert.Equal(t, tt.expected, se.Expected)
		})
	}
}

func TestDecode_ExtensionPolicies(t *testing.T) {
	src := []byte(`{"openapi":"3.0.1","info":{"title":"t","x-ok":1,"vendorField":2},"paths":{}}`)

	tests := []struct {
		name   string
		policy codec.ExtensionPolicy
		want   codec.Extensions
	}{
		{"capture all", codec.ExtensionsCaptureAll, codec.Extensions{"x-ok": json.Number("1"), "vendorField": json.Number("2")}},
		{"prefix only", codec.ExtensionsPrefixOnly, codec.Extensions{"x-ok": json.Number("1")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			require.NoError(t, doc.DecodeJSON(&codec.Context{ExtensionPolicy: tt.policy}, src))
			assert.Equal(t, tt.want, doc.Info.Extensions)
		})
	}

	t.Run("strict", func(t *testing.T) {
		var doc Document
		err := doc.DecodeJSON(&codec.Context{ExtensionPolicy: codec.ExtensionsStrict}, src)
		var se *oaserrors.ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "info.vendorField", se.PathString())
	})
}

func TestEncode_Collision(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.0.0",
		Info:    &Info{Title: "t"},
		Paths: map[string]*PathItem{
			"/a": {Get: &Operation{Extensions: codec.Extensions{"responses": "shadow"}}},
		},
	}
	_, err := json.Marshal(doc)
	require.ErrorIs(t, err, oaserrors.ErrExtensionCollision)
	var ce *oaserrors.CollisionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Operation", ce.Object)
	assert.Equal(t, "responses", ce.Key)
}

func TestEncode_AlwaysEmitted(t *testing.T) {
	body := codec.NewInline(&RequestBody{})
	doc := &Document{
		OpenAPI: "3.0.0",
		Info:    &Info{Title: "t"},
		Paths: map[string]*PathItem{
			"/a": {Post: &Operation{RequestBody: &body}},
		},
	}
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"openapi":"3.0.0",
		"info":{"title":"t"},
		"paths":{"/a":{"post":{"requestBody":{"content":{}},"responses":{}}}}
	}`, string(out))
}

func TestCallback_Encode(t *testing.T) {
	cb := &Callback{
		Expressions: map[string]*PathItem{"{$url}": {Summary: "s"}},
		Extensions:  codec.Extensions{"x-retry": 1},
	}
	out, err := json.Marshal(cb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"{$url}":{"summary":"s"},"x-retry":1}`, string(out))

	var again Callback
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, "s", again.Expressions["{$url}"].Summary)
	assert.Equal(t, codec.Extensions{"x-retry": json.Number("1")}, again.Extensions)
}

func TestPathItem_Operations(t *testing.T) {
	item := &PathItem{Get: &Operation{}, Trace: &Operation{}}
	ops := item.Operations()
	assert.Len(t, ops, 2)
	assert.Contains(t, ops, "get")
	assert.Contains(t, ops, "trace")
}

func TestSchemaRef_SiblingsDropped(t *testing.T) {
	var r codec.RefOr[Schema]
	require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/definitions/Pet","type":"object"}`), &r))
	assert.True(t, r.IsRef())
	assert.Equal(t, "#/definitions/Pet", r.Ref)
	assert.Nil(t, r.Value)

	src := `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{},"components":{"schemas":` +
		`{"Alias":{"$ref":"#/components/schemas/Pet","type":"object"},"Pet":{"type":"object"}}}}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(src), &doc))
	alias := doc.Components.Schemas["Alias"]
	require.True(t, alias.IsRef())
	assert.Equal(t, "#/components/schemas/Pet", alias.Ref)

	out, err := json.Marshal(&doc)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, json.Unmarshal(out, &generic))
	schemas := generic["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/Pet"}, schemas["Alias"])
}
