package oas2

import (
	"encoding/json"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oaserrors"
)

var schemaFields = withValidations(
	"title", "description", "type", "format", "required", "default",
	"maxProperties", "minProperties", "items", "properties", "additionalProperties",
	"allOf", "discriminator", "readOnly", "xml", "externalDocs", "example",
)

// DecodeJSON decodes a Schema object.
func (s *Schema) DecodeJSON(c *codec.Context, data []byte) error {
	*s = Schema{}
	d, err := c.Object(data, "Schema", schemaFields)
	if err != nil {
		return err
	}
	codec.Value(d, "title", codec.Optional, &s.Title)
	codec.Value(d, "description", codec.Optional, &s.Description)
	codec.Value(d, "type", codec.Optional, &s.Type)
	codec.Value(d, "format", codec.Optional, &s.Format)
	codec.Value(d, "required", codec.Optional, &s.Required)
	codec.Value(d, "default", codec.Optional, &s.Default)
	s.Validations.decode(d)
	codec.Value(d, "maxProperties", codec.Optional, &s.MaxProperties)
	codec.Value(d, "minProperties", codec.Optional, &s.MinProperties)
	codec.Object(d, "items", codec.Optional, &s.Items)
	codec.ValueMap(d, "properties", codec.Optional, &s.Properties)
	codec.Object(d, "additionalProperties", codec.Optional, &s.AdditionalProperties)
	codec.ValueSlice(d, "allOf", codec.Optional, &s.AllOf)
	codec.Value(d, "discriminator", codec.Optional, &s.Discriminator)
	codec.Value(d, "readOnly", codec.Optional, &s.ReadOnly)
	codec.Object(d, "xml", codec.Optional, &s.XML)
	codec.Object(d, "externalDocs", codec.Optional, &s.ExternalDocs)
	codec.Value(d, "example", codec.Optional, &s.Example)
	s.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Schema) UnmarshalJSON(data []byte) error {
	return s.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Schema", schemaFields)
	e.String("title", s.Title)
	e.String("description", s.Description)
	e.String("type", s.Type)
	e.String("format", s.Format)
	codec.SetSlice(e, "required", s.Required)
	e.Any("default", s.Default)
	s.Validations.encode(e)
	codec.SetPtr(e, "maxProperties", s.MaxProperties)
	codec.SetPtr(e, "minProperties", s.MinProperties)
	codec.SetPtr(e, "items", s.Items)
	codec.SetMap(e, "properties", s.Properties)
	codec.SetPtr(e, "additionalProperties", s.AdditionalProperties)
	codec.SetSlice(e, "allOf", s.AllOf)
	e.String("discriminator", s.Discriminator)
	e.Bool("readOnly", s.ReadOnly)
	codec.SetPtr(e, "xml", s.XML)
	codec.SetPtr(e, "externalDocs", s.ExternalDocs)
	e.Any("example", s.Example)
	return e.Marshal(s.Extensions)
}

// DecodeJSON decodes the boolean or schema form.
func (a *AdditionalProperties) DecodeJSON(c *codec.Context, data []byte) error {
	*a = AdditionalProperties{}
	switch kind := codec.Kind(data); kind {
	case codec.KindBoolean:
		return json.Unmarshal(data, &a.Allowed)
	case codec.KindObject:
		var schema codec.RefOr[Schema]
		if err := schema.DecodeJSON(c, data); err != nil {
			return err
		}
		a.Schema = &schema
		return nil
	default:
		return &oaserrors.ShapeError{
			Object:   "AdditionalProperties",
			Expected: "boolean or object",
			Actual:   kind,
		}
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AdditionalProperties) UnmarshalJSON(data []byte) error {
	return a.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (a *AdditionalProperties) MarshalJSON() ([]byte, error) {
	if a.Schema != nil {
		return json.Marshal(a.Schema)
	}
	return json.Marshal(a.Allowed)
}
