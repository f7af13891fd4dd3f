package oas3

import (
	"encoding/json"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oaserrors"
)

var (
	schemaFields = codec.NewFields(
		"title", "description", "type", "format", "enum", "default",
		"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
		"maxLength", "minLength", "pattern", "maxItems", "minItems", "uniqueItems",
		"maxProperties", "minProperties", "required", "items", "properties",
		"additionalProperties", "allOf", "oneOf", "anyOf", "not", "nullable",
		"discriminator", "readOnly", "writeOnly", "xml", "externalDocs", "example", "deprecated",
	)
	discriminatorFields = codec.NewFields("propertyName", "mapping")
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
	codec.Value(d, "enum", codec.Optional, &s.Enum)
	codec.Value(d, "default", codec.Optional, &s.Default)
	codec.Value(d, "multipleOf", codec.Optional, &s.MultipleOf)
	codec.Value(d, "maximum", codec.Optional, &s.Maximum)
	codec.Value(d, "exclusiveMaximum", codec.Optional, &s.ExclusiveMaximum)
	codec.Value(d, "minimum", codec.Optional, &s.Minimum)
	codec.Value(d, "exclusiveMinimum", codec.Optional, &s.ExclusiveMinimum)
	codec.Value(d, "maxLength", codec.Optional, &s.MaxLength)
	codec.Value(d, "minLength", codec.Optional, &s.MinLength)
	codec.Value(d, "pattern", codec.Optional, &s.Pattern)
	codec.Value(d, "maxItems", codec.Optional, &s.MaxItems)
	codec.Value(d, "minItems", codec.Optional, &s.MinItems)
	codec.Value(d, "uniqueItems", codec.Optional, &s.UniqueItems)
	codec.Value(d, "maxProperties", codec.Optional, &s.MaxProperties)
	codec.Value(d, "minProperties", codec.Optional, &s.MinProperties)
	codec.Value(d, "required", codec.Optional, &s.Required)
	codec.Object(d, "items", codec.Optional, &s.Items)
	codec.ValueMap(d, "properties", codec.Optional, &s.Properties)
	codec.Object(d, "additionalProperties", codec.Optional, &s.AdditionalProperties)
	codec.ValueSlice(d, "allOf", codec.Optional, &s.AllOf)
	codec.ValueSlice(d, "oneOf", codec.Optional, &s.OneOf)
	codec.ValueSlice(d, "anyOf", codec.Optional, &s.AnyOf)
	codec.Object(d, "not", codec.Optional, &s.Not)
	codec.Value(d, "nullable", codec.Optional, &s.Nullable)
	codec.Object(d, "discriminator", codec.Optional, &s.Discriminator)
	codec.Value(d, "readOnly", codec.Optional, &s.ReadOnly)
	codec.Value(d, "writeOnly", codec.Optional, &s.WriteOnly)
	codec.Object(d, "xml", codec.Optional, &s.XML)
	codec.Object(d, "externalDocs", codec.Optional, &s.ExternalDocs)
	codec.Value(d, "example", codec.Optional, &s.Example)
	codec.Value(d, "deprecated", codec.Optional, &s.Deprecated)
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
	codec.SetSlice(e, "enum", s.Enum)
	e.Any("default", s.Default)
	codec.SetPtr(e, "multipleOf", s.MultipleOf)
	codec.SetPtr(e, "maximum", s.Maximum)
	e.Bool("exclusiveMaximum", s.ExclusiveMaximum)
	codec.SetPtr(e, "minimum", s.Minimum)
	e.Bool("exclusiveMinimum", s.ExclusiveMinimum)
	codec.SetPtr(e, "maxLength", s.MaxLength)
	codec.SetPtr(e, "minLength", s.MinLength)
	e.String("pattern", s.Pattern)
	codec.SetPtr(e, "maxItems", s.MaxItems)
	codec.SetPtr(e, "minItems", s.MinItems)
	e.Bool("uniqueItems", s.UniqueItems)
	codec.SetPtr(e, "maxProperties", s.MaxProperties)
	codec.SetPtr(e, "minProperties", s.MinProperties)
	codec.SetSlice(e, "required", s.Required)
	codec.SetPtr(e, "items", s.Items)
	codec.SetMap(e, "properties", s.Properties)
	codec.SetPtr(e, "additionalProperties", s.AdditionalProperties)
	codec.SetSlice(e, "allOf", s.AllOf)
	codec.SetSlice(e, "oneOf", s.OneOf)
	codec.SetSlice(e, "anyOf", s.AnyOf)
	codec.SetPtr(e, "not", s.Not)
	e.Bool("nullable", s.Nullable)
	codec.SetPtr(e, "discriminator", s.Discriminator)
	e.Bool("readOnly", s.ReadOnly)
	e.Bool("writeOnly", s.WriteOnly)
	codec.SetPtr(e, "xml", s.XML)
	codec.SetPtr(e, "externalDocs", s.ExternalDocs)
	e.Any("example", s.Example)
	e.Bool("deprecated", s.Deprecated)
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

// DecodeJSON decodes a Discriminator object. "propertyName" is required.
func (x *Discriminator) DecodeJSON(c *codec.Context, data []byte) error {
	*x = Discriminator{}
	d, err := c.Object(data, "Discriminator", discriminatorFields)
	if err != nil {
		return err
	}
	codec.Value(d, "propertyName", codec.Required, &x.PropertyName)
	codec.Value(d, "mapping", codec.Optional, &x.Mapping)
	x.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Discriminator) UnmarshalJSON(data []byte) error {
	return x.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (x *Discriminator) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Discriminator", discriminatorFields)
	e.Set("propertyName", x.PropertyName)
	codec.SetMap(e, "mapping", x.Mapping)
	return e.Marshal(x.Extensions)
}
