package oas3

import "github.com/erraggy/oasbind/codec"

// Schema is the OpenAPI 3.0 Schema Object, an extended subset of JSON Schema.
type Schema struct {
	Title                string
	Description          string
	Type                 string
	Format               string
	Enum                 []any
	Default              any
	MultipleOf           *float64
	Maximum              *float64
	ExclusiveMaximum     bool
	Minimum              *float64
	ExclusiveMinimum     bool
	MaxLength            *int
	MinLength            *int
	Pattern              string
	MaxItems             *int
	MinItems             *int
	UniqueItems          bool
	MaxProperties        *int
	MinProperties        *int
	Required             []string
	Items                *codec.RefOr[Schema]
	Properties           map[string]codec.RefOr[Schema]
	AdditionalProperties *AdditionalProperties
	AllOf                []codec.RefOr[Schema]
	OneOf                []codec.RefOr[Schema]
	AnyOf                []codec.RefOr[Schema]
	Not                  *codec.RefOr[Schema]
	Nullable             bool
	Discriminator        *Discriminator
	ReadOnly             bool
	WriteOnly            bool
	XML                  *XML
	ExternalDocs         *ExternalDocs
	Example              any
	Deprecated           bool
	Extensions           codec.Extensions
}

// AdditionalProperties is either a boolean or a schema.
// When Schema is nil, Allowed holds the boolean form.
type AdditionalProperties struct {
	Allowed bool
	Schema  *codec.RefOr[Schema]
}

// Discriminator selects a schema among alternatives by a property value.
type Discriminator struct {
	PropertyName string // Required
	Mapping      map[string]string
	Extensions   codec.Extensions
}
