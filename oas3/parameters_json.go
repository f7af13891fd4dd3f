package oas3

import "github.com/erraggy/oasbind/codec"

var (
	parameterFields = codec.NewFields(
		"name", "in", "description", "required", "deprecated", "allowEmptyValue", "style",
		"explode", "allowReserved", "schema", "example", "examples", "content",
	)
	headerFields = codec.NewFields(
		"description", "required", "deprecated", "allowEmptyValue", "style",
		"explode", "allowReserved", "schema", "example", "examples", "content",
	)
)

// DecodeJSON decodes a Parameter object. "name" and "in" are required.
func (p *Parameter) DecodeJSON(c *codec.Context, data []byte) error {
	*p = Parameter{}
	d, err := c.Object(data, "Parameter", parameterFields)
	if err != nil {
		return err
	}
	codec.Value(d, "name", codec.Required, &p.Name)
	codec.Value(d, "in", codec.Required, &p.In)
	codec.Value(d, "description", codec.Optional, &p.Description)
	codec.Value(d, "required", codec.Optional, &p.Required)
	codec.Value(d, "deprecated", codec.Optional, &p.Deprecated)
	codec.Value(d, "allowEmptyValue", codec.Optional, &p.AllowEmptyValue)
	codec.Value(d, "style", codec.Optional, &p.Style)
	codec.Value(d, "explode", codec.Optional, &p.Explode)
	codec.Value(d, "allowReserved", codec.Optional, &p.AllowReserved)
	codec.Object(d, "schema", codec.Optional, &p.Schema)
	codec.Value(d, "example", codec.Optional, &p.Example)
	codec.ValueMap(d, "examples", codec.Optional, &p.Examples)
	codec.Map(d, "content", codec.Optional, &p.Content)
	p.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	return p.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Parameter", parameterFields)
	e.Set("name", p.Name)
	e.Set("in", p.In)
	e.String("description", p.Description)
	e.Bool("required", p.Required)
	e.Bool("deprecated", p.Deprecated)
	e.Bool("allowEmptyValue", p.AllowEmptyValue)
	e.String("style", p.Style)
	codec.SetPtr(e, "explode", p.Explode)
	e.Bool("allowReserved", p.AllowReserved)
	codec.SetPtr(e, "schema", p.Schema)
	e.Any("example", p.Example)
	codec.SetMap(e, "examples", p.Examples)
	codec.SetMap(e, "content", p.Content)
	return e.Marshal(p.Extensions)
}

// DecodeJSON decodes a Header object.
func (h *Header) DecodeJSON(c *codec.Context, data []byte) error {
	*h = Header{}
	d, err := c.Object(data, "Header", headerFields)
	if err != nil {
		return err
	}
	codec.Value(d, "description", codec.Optional, &h.Description)
	codec.Value(d, "required", codec.Optional, &h.Required)
	codec.Value(d, "deprecated", codec.Optional, &h.Deprecated)
	codec.Value(d, "allowEmptyValue", codec.Optional, &h.AllowEmptyValue)
	codec.Value(d, "style", codec.Optional, &h.Style)
	codec.Value(d, "explode", codec.Optional, &h.Explode)
	codec.Value(d, "allowReserved", codec.Optional, &h.AllowReserved)
	codec.Object(d, "schema", codec.Optional, &h.Schema)
	codec.Value(d, "example", codec.Optional, &h.Example)
	codec.ValueMap(d, "examples", codec.Optional, &h.Examples)
	codec.Map(d, "content", codec.Optional, &h.Content)
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
	e.Bool("required", h.Required)
	e.Bool("deprecated", h.Deprecated)
	e.Bool("allowEmptyValue", h.AllowEmptyValue)
	e.String("style", h.Style)
	codec.SetPtr(e, "explode", h.Explode)
	e.Bool("allowReserved", h.AllowReserved)
	codec.SetPtr(e, "schema", h.Schema)
	e.Any("example", h.Example)
	codec.SetMap(e, "examples", h.Examples)
	codec.SetMap(e, "content", h.Content)
	return e.Marshal(h.Extensions)
}
