package oas2

import "github.com/erraggy/oasbind/codec"

// Document is the root of an OpenAPI 2.0 document.
// Reference: https://spec.openapis.org/oas/v2.0.html#swagger-object
type Document struct {
	Swagger             string                         // Required: "2.0"
	Info                *Info                          // Required
	Host                string                         // e.g., "api.example.com"
	BasePath            string                         // e.g., "/v1"
	Schemes             []string                       // e.g., ["http", "https"]
	Consumes            []string                       // MIME types
	Produces            []string                       // MIME types
	Paths               map[string]*PathItem           // Required
	Definitions         map[string]codec.RefOr[Schema] // Reusable schemas
	Parameters          map[string]*Parameter
	Responses           map[string]*Response
	SecurityDefinitions map[string]*SecurityScheme
	Security            []SecurityRequirement
	Tags                []*Tag
	ExternalDocs        *ExternalDocs
	Extensions          codec.Extensions
}

// SecurityRequirement maps security scheme names to the scopes they need.
type SecurityRequirement map[string][]string
