package oas2

import "github.com/erraggy/oasbind/codec"

// DocumentFields are the member keys of the OAS 2.0 root object.
var DocumentFields = codec.NewFields(
	"swagger", "info", "host", "basePath", "schemes", "consumes", "produces",
	"paths", "definitions", "parameters", "responses", "securityDefinitions",
	"security", "tags", "externalDocs",
)

// DecodeJSON decodes the root object. "swagger", "info" and "paths" are required.
func (doc *Document) DecodeJSON(c *codec.Context, data []byte) error {
	*doc = Document{}
	d, err := c.Object(data, "Document", DocumentFields)
	if err != nil {
		return err
	}
	codec.Value(d, "swagger", codec.Required, &doc.Swagger)
	codec.Object(d, "info", codec.Required, &doc.Info)
	codec.Value(d, "host", codec.Optional, &doc.Host)
	codec.Value(d, "basePath", codec.Optional, &doc.BasePath)
	codec.Value(d, "schemes", codec.Optional, &doc.Schemes)
	codec.Value(d, "consumes", codec.Optional, &doc.Consumes)
	codec.Value(d, "produces", codec.Optional, &doc.Produces)
	codec.Map(d, "paths", codec.Required, &doc.Paths)
	codec.ValueMap(d, "definitions", codec.Optional, &doc.Definitions)
	codec.Map(d, "parameters", codec.Optional, &doc.Parameters)
	codec.Map(d, "responses", codec.Optional, &doc.Responses)
	codec.Map(d, "securityDefinitions", codec.Optional, &doc.SecurityDefinitions)
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
	e.Set("swagger", doc.Swagger)
	e.Set("info", doc.Info)
	e.String("host", doc.Host)
	e.String("basePath", doc.BasePath)
	codec.SetSlice(e, "schemes", doc.Schemes)
	codec.SetSlice(e, "consumes", doc.Consumes)
	codec.SetSlice(e, "produces", doc.Produces)
	paths := doc.Paths
	if paths == nil {
		paths = map[string]*PathItem{}
	}
	e.Set("paths", paths)
	codec.SetMap(e, "definitions", doc.Definitions)
	codec.SetMap(e, "parameters", doc.Parameters)
	codec.SetMap(e, "responses", doc.Responses)
	codec.SetMap(e, "securityDefinitions", doc.SecurityDefinitions)
	codec.SetSlice(e, "security", doc.Security)
	codec.SetSlice(e, "tags", doc.Tags)
	codec.SetPtr(e, "externalDocs", doc.ExternalDocs)
	return e.Marshal(doc.Extensions)
}
