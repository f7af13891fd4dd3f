package oas3

import "github.com/erraggy/oasbind/codec"

// Document is the root of an OpenAPI 3.x document.
// Reference: https://spec.openapis.org/oas/v3.0.3.html#openapi-object
type Document struct {
	OpenAPI      string               // Required: "3.0.0" through "3.x.y"
	Info         *Info                // Required
	Servers      []*Server            // Base URLs for the API
	Paths        map[string]*PathItem // Required
	Components   *Components
	Security     []SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Extensions   codec.Extensions
}

// SecurityRequirement maps security scheme names to the scopes they need.
type SecurityRequirement map[string][]string

// Components holds reusable objects addressed by "#/components/...".
type Components struct {
	Schemas         map[string]codec.RefOr[Schema]
	Responses       map[string]codec.RefOr[Response]
	Parameters      map[string]codec.RefOr[Parameter]
	Examples        map[string]codec.RefOr[Example]
	RequestBodies   map[string]codec.RefOr[RequestBody]
	Headers         map[string]codec.RefOr[Header]
	SecuritySchemes map[string]codec.RefOr[SecurityScheme]
	Links           map[string]codec.RefOr[Link]
	Callbacks       map[string]codec.RefOr[Callback]
	Extensions      codec.Extensions
}
