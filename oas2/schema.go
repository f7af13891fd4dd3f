package oas2

import "github.com/erraggy/oasbind/codec"

// Schema is the OpenAPI 2.0 Schema Object, a subset of JSON Schema draft 4.
type Schema struct {
	Title                string
	Description          string
	Type                 string
	Format               string
	Required             []string
	Default              any
	Validations
	MaxProperties        *int
	MinProperties        *int
	Items                *codec.RefOr[Schema]
	Properties           map[string]codec.RefOr[Schema]
	AdditionalProperties *AdditionalProperties
	AllOf                []codec.RefOr[Schema]
	Discriminator        string // property name used for polymorphism
	ReadOnly             bool
	XML                  *XML
	ExternalDocs         *ExternalDocs
	Example              any
	Extensions           codec.Extensions
}

// AdditionalProperties is either a boolean or a schema.
// When Schema is nil, Allowed holds the boolean form.
type AdditionalProperties struct {
	Allowed bool
	Schema  *codec.RefOr[Schema]
}
