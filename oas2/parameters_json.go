package oas2

import "github.com/erraggy/oasbind/codec"

var validationKeys = []string{
	"maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum", "maxLength", "minLength",
	"pattern", "maxItems", "minItems", "uniqueItems", "enum", "multipleOf",
}

// withValidations builds a field set from keys plus the validation keywords.
func withValidations(keys ...string) codec.Fields {
	all := make([]string, 0, len(keys)+len(validationKeys))
	all = append(all, keys...)
	all = append(all, validationKeys...)
	return codec.NewFields(all...)
}

var (
	parameterFields = withValidations(
		"name", "in", "description", "required", "schema", "type", "format",
		"allowEmptyValue", "items", "collectionFormat", "default",
	)
	itemsFields = withValidations("type", "format", "items", "collectionFormat", "default")
)

func (v *Validations) decode(d *codec.ObjectDecoder) {
	codec.Value(d, "maximum", codec.Optional, &v.Maximum)
	codec.Value(d, "exclusiveMaximum", codec.Optional, &v.ExclusiveMaximum)
	codec.Value(d, "minimum", codec.Optional, &v.Minimum)
	codec.Value(d, "exclusiveMinimum", codec.Optional, &v.ExclusiveMinimum)
	codec.Value(d, "maxLength", codec.Optional, &v.MaxLength)
	codec.Value(d, "minLength", codec.Optional, &v.MinLength)
	codec.Value(d, "pattern", codec.Optional, &v.Pattern)
	codec.Value(d, "maxItems", codec.Optional, &v.MaxItems)
	codec.Value(d, "minItems", codec.Optional, &v.MinItems)
	codec.Value(d, "uniqueItems", codec.Optional, &v.UniqueItems)
	codec.Value(d, "enum", codec.Optional, &v.Enum)
	codec.Value(d, "multipleOf", codec.Optional, &v.MultipleOf)
}

func (v *Validations) encode(e *codec.ObjectEncoder) {
	codec.SetPtr(e, "maximum", v.Maximum)
	e.Bool("exclusiveMaximum", v.ExclusiveMaximum)
	codec.SetPtr(e, "minimum", v.Minimum)
	e.Bool("exclusiveMinimum", v.ExclusiveMinimum)
	codec.SetPtr(e, "maxLength", v.MaxLength)
	codec.SetPtr(e, "minLength", v.MinLength)
	e.String("pattern", v.Pattern)
	codec.SetPtr(e, "maxItems", v.MaxItems)
	codec.SetPtr(e, "minItems", v.MinItems)
	e.Bool("uniqueItems", v.UniqueItems)
	codec.SetSlice(e, "enum", v.Enum)
	codec.SetPtr(e, "multipleOf", v.MultipleOf)
}

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
	codec.Object(d, "schema", codec.Optional, &p.Schema)
	codec.Value(d, "type", codec.Optional, &p.Type)
	codec.Value(d, "format", codec.Optional, &p.Format)
	codec.Value(d, "allowEmptyValue", codec.Optional, &p.AllowEmptyValue)
	codec.Object(d, "items", codec.Optional, &p.Items)
	codec.Value(d, "collectionFormat", codec.Optional, &p.CollectionFormat)
	codec.Value(d, "default", codec.Optional, &p.Default)
	p.Validations.decode(d)
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
	codec.SetPtr(e, "schema", p.Schema)
	e.String("type", p.Type)
	e.String("format", p.Format)
	e.Bool("allowEmptyValue", p.AllowEmptyValue)
	codec.SetPtr(e, "items", p.Items)
	e.String("collectionFormat", p.CollectionFormat)
	e.Any("default", p.Default)
	p.Validations.encode(e)
	return e.Marshal(p.Extensions)
}

// DecodeJSON decodes an Items object. "type" is required.
func (it *Items) DecodeJSON(c *codec.Context, data []byte) error {
	*it = Items{}
	d, err := c.Object(data, "Items", itemsFields)
	if err != nil {
		return err
	}
	codec.Value(d, "type", codec.Required, &it.Type)
	codec.Value(d, "format", codec.Optional, &it.Format)
	codec.Object(d, "items", codec.Optional, &it.Items)
	codec.Value(d, "collectionFormat", codec.Optional, &it.CollectionFormat)
	codec.Value(d, "default", codec.Optional, &it.Default)
	it.Validations.decode(d)
	it.Extensions = d.Extensions()
	return d.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (it *Items) UnmarshalJSON(data []byte) error {
	return it.DecodeJSON(codec.Default(), data)
}

// MarshalJSON implements json.Marshaler.
func (it *Items) MarshalJSON() ([]byte, error) {
	e := codec.NewObjectEncoder("Items", itemsFields)
	e.Set("type", it.Type)
	e.String("format", it.Format)
	codec.SetPtr(e, "items", it.Items)
	e.String("collectionFormat", it.CollectionFormat)
	e.Any("default", it.Default)
	it.Validations.encode(e)
	return e.Marshal(it.Extensions)
}
