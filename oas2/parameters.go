package oas2

import "github.com/erraggy/oasbind/codec"

// Parameter describes a single operation parameter.
// A "body" parameter carries Schema; all other locations use Type and the
// simple-type validations.
type Parameter struct {
	Name             string // Required
	In               string // Required: "query", "header", "path", "formData" or "body"
	Description      string
	Required         bool
	Schema           *codec.RefOr[Schema] // "body" only
	Type             string
	Format           string
	AllowEmptyValue  bool
	Items            *Items
	CollectionFormat string
	Default          any
	Validations
	Extensions codec.Extensions
}

// Items describes the element type of an array parameter or header.
type Items struct {
	Type             string // Required
	Format           string
	Items            *Items
	CollectionFormat string
	Default          any
	Validations
	Extensions codec.Extensions
}

// Validations are the JSON Schema validation keywords shared by parameters,
// items, headers and schemas.
type Validations struct {
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxItems         *int
	MinItems         *int
	UniqueItems      bool
	Enum             []any
	MultipleOf       *float64
}
