package oas2

import "github.com/erraggy/oasbind/codec"

var (
	pathItemFields = codec.NewFields("$ref", "get", "put", "post", "delete", "options", "head", "patch", "parameters")
	operationFields = codec.NewFields(
		"tags", "summary", "description", "externalDocs", "operationId", "consumes", "produces",
		"parameters", "responses", "schemes", "deprecated", "security",
	)
	responseFields = codec.NewFields("description", "schema", "headers", "examples")
	headerFields   = withValidations("description", "type", "format", "items", "collectionFormat", "default")
)

// DecodeJSON decodes a Path Item object.
func (p *PathItem) DecodeJSON(c *codec.Context, data []byte) error {
	*p = PathItem{}
	d, err := c.Object(data, "PathItem", pathItemFields)
	if err != nil {
		return err
	}
	codec.Value(d, "$ref", codec.Optional, &p.Ref)
	codec.Object(d, "get", codec.Optional, &p.Get)
	codec.Object(d, "put", codec.Optional, &p.Put)
	codec.Object(d, "post", codec.Optional, &p.Post)
	codec.Object(d, "delete", codec.Optional, &p.Delete)
	codec.Object(d, "options", codec.Optional, &p.Options)
	codec.Object(d, "head", codec.Optional, &p.Head)
	codec.Object(d, "patch", codec.Optional, &p.Patch)
	codec.ValueSlice(d, "parameters", codec.Optional, &p.Parameters)
	p.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PathItem) UnmarshalJSON(data []byte) error {
	return p.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("PathItem", pathItemFields)
	e.String("$ref", p.Ref)
	codec.SetPtr(e, "get", p.Get)
	codec.SetPtr(e, "put", p.Put)
	codec.SetPtr(e, "post", p.Post)
	codec.SetPtr(e, "delete", p.Delete)
	codec.SetPtr(e, "options", p.Options)
	codec.SetPtr(e, "head", p.Head)
	codec.SetPtr(e, "patch", p.Patch)
	codec.SetSlice(e, "parameters", p.Parameters)
	return e.Marshal(p.Extensions)
}

// DecodeJSON decodes an Operation object. "responses" is required.
func (o *Operation) DecodeJSON(c *codec.Context, data []byte) error {
	*o = Operation{}
	d, err := c.Object(data, "Operation", operationFields)
	if err != nil {
		return err
	}
	codec.Value(d, "tags", codec.Optional, &o.Tags)
	codec.Value(d, "summary", codec.Optional, &o.Summary)
	codec.Value(d, "description", codec.Optional, &o.Description)
	codec.Object(d, "externalDocs", codec.Optional, &o.ExternalDocs)
	codec.Value(d, "operationId", codec.Optional, &o.OperationID)
	codec.Value(d, "consumes", codec.Optional, &o.Consumes)
	codec.Value(d, "produces", codec.Optional, &o.Produces)
	codec.ValueSlice(d, "parameters", codec.Optional, &o.Parameters)
	codec.ValueMap(d, "responses", codec.Required, &o.Responses)
	codec.Value(d, "schemes", codec.Optional, &o.Schemes)
	codec.Value(d, "deprecated", codec.Optional, &o.Deprecated)
	codec.Value(d, "security", codec.Optional, &o.Security)
	o.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operation) UnmarshalJSON(data []byte) error {
	return o.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (o *Operation) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Operation", operationFields)
	codec.SetSlice(e, "tags", o.Tags)
	e.String("summary", o.Summary)
	e.String("description", o.Description)
	codec.SetPtr(e, "externalDocs", o.ExternalDocs)
	e.String("operationId", o.OperationID)
	codec.SetSlice(e, "consumes", o.Consumes)
	codec.SetSlice(e, "produces", o.Produces)
	codec.SetSlice(e, "parameters", o.Parameters)
	responses := o.Responses
	if responses == nil {
		responses = map[string]codec.RefOr[Response]{}
	}
	e.Set("responses", responses)
	codec.SetSlice(e, "schemes", o.Schemes)
	e.Bool("deprecated", o.Deprecated)
	codec.SetSlice(e, "security", o.Security)
	return e.Marshal(o.Extensions)
}

// DecodeJSON decodes a Response object. "description" is required.
func (r *Response) DecodeJSON(c *codec.Context, data []byte) error {
	*r = Response{}
	d, err := c.Object(data, "Response", responseFields)
	if err != nil {
		return err
	}
	codec.Value(d, "description", codec.Required, &r.Description)
	codec.Object(d, "schema", codec.Optional, &r.Schema)
	codec.Map(d, "headers", codec.Optional, &r.Headers)
	codec.Value(d, "examples", codec.Optional, &r.Examples)
	r.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Response) UnmarshalJSON(data []byte) error {
	return r.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (r *Response) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Response", responseFields)
	e.Set("description", r.Description)
	codec.SetPtr(e, "schema", r.Schema)
	codec.SetMap(e, "headers", r.Headers)
	codec.SetMap(e, "examples", r.Examples)
	return e.Marshal(r.Extensions)
}

// DecodeJSON decodes a Header object. "type" is required.
func (h *Header) DecodeJSON(c *codec.Context, data []byte) error {
	*h = Header{}
	d, err := c.Object(data, "Header", headerFields)
	if err != nil {
		return err
	}
	codec.Value(d, "description", codec.Optional, &h.Description)
	codec.Value(d, "type", codec.Required, &h.Type)
	codec.Value(d, "format", codec.Optional, &h.Format)
	codec.Object(d, "items", codec.Optional, &h.Items)
	codec.Value(d, "collectionFormat", codec.Optional, &h.CollectionFormat)
	codec.Value(d, "default", codec.Optional, &h.Default)
	h.Validations.decode(d)
	h.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Header) UnmarshalJSON(data []byte) error {
	return h.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (h *Header) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Header", headerFields)
	e.String("description", h.Description)
	e.Set("type", h.Type)
	e.String("format", h.Format)
	codec.SetPtr(e, "items", h.Items)
	e.String("collectionFormat", h.CollectionFormat)
	e.Any("default", h.Default)
	h.Validations.encode(e)
	return e.Marshal(h.Extensions)
}
