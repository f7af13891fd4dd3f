package oas3

import "github.com/erraggy/oasbind/codec"

var (
	pathItemFields = codec.NewFields(
		"$ref", "summary", "description", "get", "put", "post", "delete", "options",
		"head", "patch", "trace", "servers", "parameters",
	)
	operationFields = codec.NewFields(
		"tags", "summary", "description", "externalDocs", "operationId", "parameters",
		"requestBody", "responses", "callbacks", "deprecated", "security", "servers",
	)
	requestBodyFields = codec.NewFields("description", "content", "required")
	mediaTypeFields   = codec.NewFields("schema", "example", "examples", "encoding")
	encodingFields    = codec.NewFields("contentType", "headers", "style", "explode", "allowReserved")
	responseFields    = codec.NewFields("description", "headers", "content", "links")
	exampleFields     = codec.NewFields("summary", "description", "value", "externalValue")
	linkFields        = codec.NewFields("operationRef", "operationId", "parameters", "requestBody", "description", "server")
)

// DecodeJSON decodes a Path Item object.
func (p *PathItem) DecodeJSON(c *codec.Context, data []byte) error {
	*p = PathItem{}
	d, err := c.Object(data, "PathItem", pathItemFields)
	if err != nil {
		return err
	}
	codec.Value(d, "$ref", codec.Optional, &p.Ref)
	codec.Value(d, "summary", codec.Optional, &p.Summary)
	codec.Value(d, "description", codec.Optional, &p.Description)
	codec.Object(d, "get", codec.Optional, &p.Get)
	codec.Object(d, "put", codec.Optional, &p.Put)
	codec.Object(d, "post", codec.Optional, &p.Post)
	codec.Object(d, "delete", codec.Optional, &p.Delete)
	codec.Object(d, "options", codec.Optional, &p.Options)
	codec.Object(d, "head", codec.Optional, &p.Head)
	codec.Object(d, "patch", codec.Optional, &p.Patch)
	codec.Object(d, "trace", codec.Optional, &p.Trace)
	codec.Slice(d, "servers", codec.Optional, &p.Servers)
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
	e.String("summary", p.Summary)
	e.String("description", p.Description)
	codec.SetPtr(e, "get", p.Get)
	codec.SetPtr(e, "put", p.Put)
	codec.SetPtr(e, "post", p.Post)
	codec.SetPtr(e, "delete", p.Delete)
	codec.SetPtr(e, "options", p.Options)
	codec.SetPtr(e, "head", p.Head)
	codec.SetPtr(e, "patch", p.Patch)
	codec.SetPtr(e, "trace", p.Trace)
	codec.SetSlice(e, "servers", p.Servers)
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
	codec.ValueSlice(d, "parameters", codec.Optional, &o.Parameters)
	codec.Object(d, "requestBody", codec.Optional, &o.RequestBody)
	codec.ValueMap(d, "responses", codec.Required, &o.Responses)
	codec.ValueMap(d, "callbacks", codec.Optional, &o.Callbacks)
	codec.Value(d, "deprecated", codec.Optional, &o.Deprecated)
	codec.Value(d, "security", codec.Optional, &o.Security)
	codec.Slice(d, "servers", codec.Optional, &o.Servers)
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
	codec.SetSlice(e, "parameters", o.Parameters)
	codec.SetPtr(e, "requestBody", o.RequestBody)
	responses := o.Responses
	if responses == nil {
		responses = map[string]codec.RefOr[Response]{}
	}
	e.Set("responses", responses)
	codec.SetMap(e, "callbacks", o.Callbacks)
	e.Bool("deprecated", o.Deprecated)
	codec.SetSlice(e, "security", o.Security)
	codec.SetSlice(e, "servers", o.Servers)
	return e.Marshal(o.Extensions)
}

// DecodeJSON decodes a Request Body object. "content" is required.
func (rb *RequestBody) DecodeJSON(c *codec.Context, data []byte) error {
	*rb = RequestBody{}
	d, err := c.Object(data, "RequestBody", requestBodyFields)
	if err != nil {
		return err
	}
	codec.Value(d, "description", codec.Optional, &rb.Description)
	codec.Map(d, "content", codec.Required, &rb.Content)
	codec.Value(d, "required", codec.Optional, &rb.Required)
	rb.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (rb *RequestBody) UnmarshalJSON(data []byte) error {
	return rb.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (rb *RequestBody) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("RequestBody", requestBodyFields)
	e.String("description", rb.Description)
	content := rb.Content
	if content == nil {
		content = map[string]*MediaType{}
	}
	e.Set("content", content)
	e.Bool("required", rb.Required)
	return e.Marshal(rb.Extensions)
}

// DecodeJSON decodes a Media Type object.
func (m *MediaType) DecodeJSON(c *codec.Context, data []byte) error {
	*m = MediaType{}
	d, err := c.Object(data, "MediaType", mediaTypeFields)
	if err != nil {
		return err
	}
	codec.Object(d, "schema", codec.Optional, &m.Schema)
	codec.Value(d, "example", codec.Optional, &m.Example)
	codec.ValueMap(d, "examples", codec.Optional, &m.Examples)
	codec.Map(d, "encoding", codec.Optional, &m.Encoding)
	m.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MediaType) UnmarshalJSON(data []byte) error {
	return m.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (m *MediaType) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("MediaType", mediaTypeFields)
	codec.SetPtr(e, "schema", m.Schema)
	e.Any("example", m.Example)
	codec.SetMap(e, "examples", m.Examples)
	codec.SetMap(e, "encoding", m.Encoding)
	return e.Marshal(m.Extensions)
}

// DecodeJSON decodes an Encoding object.
func (en *Encoding) DecodeJSON(c *codec.Context, data []byte) error {
	*en = Encoding{}
	d, err := c.Object(data, "Encoding", encodingFields)
	if err != nil {
		return err
	}
	codec.Value(d, "contentType", codec.Optional, &en.ContentType)
	codec.ValueMap(d, "headers", codec.Optional, &en.Headers)
	codec.Value(d, "style", codec.Optional, &en.Style)
	codec.Value(d, "explode", codec.Optional, &en.Explode)
	codec.Value(d, "allowReserved", codec.Optional, &en.AllowReserved)
	en.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (en *Encoding) UnmarshalJSON(data []byte) error {
	return en.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (en *Encoding) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Encoding", encodingFields)
	e.String("contentType", en.ContentType)
	codec.SetMap(e, "headers", en.Headers)
	e.String("style", en.Style)
	codec.SetPtr(e, "explode", en.Explode)
	e.Bool("allowReserved", en.AllowReserved)
	return e.Marshal(en.Extensions)
}

// DecodeJSON decodes a Response object. "description" is required.
func (r *Response) DecodeJSON(c *codec.Context, data []byte) error {
	*r = Response{}
	d, err := c.Object(data, "Response", responseFields)
	if err != nil {
		return err
	}
	codec.Value(d, "description", codec.Required, &r.Description)
	codec.ValueMap(d, "headers", codec.Optional, &r.Headers)
	codec.Map(d, "content", codec.Optional, &r.Content)
	codec.ValueMap(d, "links", codec.Optional, &r.Links)
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
	codec.SetMap(e, "headers", r.Headers)
	codec.SetMap(e, "content", r.Content)
	codec.SetMap(e, "links", r.Links)
	return e.Marshal(r.Extensions)
}

// DecodeJSON decodes an Example object.
func (x *Example) DecodeJSON(c *codec.Context, data []byte) error {
	*x = Example{}
	d, err := c.Object(data, "Example", exampleFields)
	if err != nil {
		return err
	}
	codec.Value(d, "summary", codec.Optional, &x.Summary)
	codec.Value(d, "description", codec.Optional, &x.Description)
	codec.Value(d, "value", codec.Optional, &x.Value)
	codec.Value(d, "externalValue", codec.Optional, &x.ExternalValue)
	x.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Example) UnmarshalJSON(data []byte) error {
	return x.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (x *Example) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Example", exampleFields)
	e.String("summary", x.Summary)
	e.String("description", x.Description)
	e.Any("value", x.Value)
	e.String("externalValue", x.ExternalValue)
	return e.Marshal(x.Extensions)
}

// DecodeJSON decodes a Link object.
func (l *Link) DecodeJSON(c *codec.Context, data []byte) error {
	*l = Link{}
	d, err := c.Object(data, "Link", linkFields)
	if err != nil {
		return err
	}
	codec.Value(d, "operationRef", codec.Optional, &l.OperationRef)
	codec.Value(d, "operationId", codec.Optional, &l.OperationID)
	codec.Value(d, "parameters", codec.Optional, &l.Parameters)
	codec.Value(d, "requestBody", codec.Optional, &l.RequestBody)
	codec.Value(d, "description", codec.Optional, &l.Description)
	codec.Object(d, "server", codec.Optional, &l.Server)
	l.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Link) UnmarshalJSON(data []byte) error {
	return l.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (l *Link) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Link", linkFields)
	e.String("operationRef", l.OperationRef)
	e.String("operationId", l.OperationID)
	codec.SetMap(e, "parameters", l.Parameters)
	e.Any("requestBody", l.RequestBody)
	e.String("description", l.Description)
	codec.SetPtr(e, "server", l.Server)
	return e.Marshal(l.Extensions)
}

// DecodeJSON decodes a Callback object. Every member except "x-" extensions
// is an expression whose value is a Path Item.
func (cb *Callback) DecodeJSON(c *codec.Context, data []byte) error {
	*cb = Callback{}
	d, err := c.Object(data, "Callback", nil)
	if err != nil {
		return err
	}
	var expressions []string
	for _, key := range d.Keys() {
		if !codec.IsExtensionKey(key) {
			expressions = append(expressions, key)
		}
	}
	d.Declare(expressions...)
	for _, expr := range expressions {
		var item *PathItem
		codec.Object(d, expr, codec.Required, &item)
		if item == nil {
			break
		}
		if cb.Expressions == nil {
			cb.Expressions = make(map[string]*PathItem, len(expressions))
		}
		cb.Expressions[expr] = item
	}
	cb.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (cb *Callback) UnmarshalJSON(data []byte) error {
	return cb.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (cb *Callback) MarshalJSON() ([]byte, error) {
	fields := make(codec.Fields, len(cb.Expressions))
	for expr := range cb.Expressions {
		fields[expr] = struct{}{}
	}
	e := codec.NewObjectEncoder("Callback", fields)
	for expr, item := range cb.Expressions {
		e.Set(expr, item)
	}
	return e.Marshal(cb.Extensions)
}
