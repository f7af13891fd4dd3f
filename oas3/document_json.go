package oas3

import "github.com/erraggy/oasbind/codec"

// DocumentFields are the member keys of the OAS 3.x root object.
var DocumentFields = codec.NewFields(
	"openapi", "info", "servers", "paths", "components", "security", "tags", "externalDocs",
)

var componentsFields = codec.NewFields(
	"schemas", "responses", "parameters", "examples", "requestBodies", "headers",
	"securitySchemes", "links", "callbacks",
)

// DecodeJSON decodes the root object. "openapi", "info" and "paths" are required.
func (doc *Document) DecodeJSON(c *codec.Context, data []byte) error {
	*doc = Document{}
	d, err := c.Object(data, "Document", DocumentFields)
	if err != nil {
		return err
	}
	codec.Value(d, "openapi", codec.Required, &doc.OpenAPI)
	codec.Object(d, "info", codec.Required, &doc.Info)
	codec.Slice(d, "servers", codec.Optional, &doc.Servers)
	codec.Map(d, "paths", codec.Required, &doc.Paths)
	codec.Object(d, "components", codec.Optional, &doc.Components)
	codec.Value(d, "security", codec.Optional, &doc.Security)
	codec.Slice(d, "tags", codec.Optional, &doc.Tags)
	codec.Object(d, "externalDocs", codec.Optional, &doc.ExternalDocs)
	doc.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (doc *Document) UnmarshalJSON(data []byte) error {
	return doc.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler. Paths is always emitted, as {} when nil.
func (doc *Document) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Document", DocumentFields)
	e.Set("openapi", doc.OpenAPI)
	e.Set("info", doc.Info)
	codec.SetSlice(e, "servers", doc.Servers)
	paths := doc.Paths
	if paths == nil {
		paths = map[string]*PathItem{}
	}
	e.Set("paths", paths)
	codec.SetPtr(e, "components", doc.Components)
	codec.SetSlice(e, "security", doc.Security)
	codec.SetSlice(e, "tags", doc.Tags)
	codec.SetPtr(e, "externalDocs", doc.ExternalDocs)
	return e.Marshal(doc.Extensions)
}

// DecodeJSON decodes a Components object.
func (cp *Components) DecodeJSON(c *codec.Context, data []byte) error {
	*cp = Components{}
	d, err := c.Object(data, "Components", componentsFields)
	if err != nil {
		return err
	}
	codec.ValueMap(d, "schemas", codec.Optional, &cp.Schemas)
	codec.ValueMap(d, "responses", codec.Optional, &cp.Responses)
	codec.ValueMap(d, "parameters", codec.Optional, &cp.Parameters)
	codec.ValueMap(d, "examples", codec.Optional, &cp.Examples)
	codec.ValueMap(d, "requestBodies", codec.Optional, &cp.RequestBodies)
	codec.ValueMap(d, "headers", codec.Optional, &cp.Headers)
	codec.ValueMap(d, "securitySchemes", codec.Optional, &cp.SecuritySchemes)
	codec.ValueMap(d, "links", codec.Optional, &cp.Links)
	codec.ValueMap(d, "callbacks", codec.Optional, &cp.Callbacks)
	cp.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (cp *Components) UnmarshalJSON(data []byte) error {
	return cp.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (cp *Components) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Components", componentsFields)
	codec.SetMap(e, "schemas", cp.Schemas)
	codec.SetMap(e, "responses", cp.Responses)
	codec.SetMap(e, "parameters", cp.Parameters)
	codec.SetMap(e, "examples", cp.Examples)
	codec.SetMap(e, "requestBodies", cp.RequestBodies)
	codec.SetMap(e, "headers", cp.Headers)
	codec.SetMap(e, "securitySchemes", cp.SecuritySchemes)
	codec.SetMap(e, "links", cp.Links)
	codec.SetMap(e, "callbacks", cp.Callbacks)
	return e.Marshal(cp.Extensions)
}
