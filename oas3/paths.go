package oas3

import "github.com/erraggy/oasbind/codec"

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string // "$ref" to an external path item definition
	Summary     string
	Description string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []codec.RefOr[Parameter]
	Extensions  codec.Extensions
}

// Operations returns the operations of a path item keyed by lower-case HTTP
// method. Methods without an operation are omitted.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 8)
	for method, op := range map[string]*Operation{
		"get":     p.Get,
		"put":     p.Put,
		"post":    p.Post,
		"delete":  p.Delete,
		"options": p.Options,
		"head":    p.Head,
		"patch":   p.Patch,
		"trace":   p.Trace,
	} {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []codec.RefOr[Parameter]
	RequestBody  *codec.RefOr[RequestBody]
	Responses    map[string]codec.RefOr[Response] // Required; keyed by status code or "default"
	Callbacks    map[string]codec.RefOr[Callback]
	Deprecated   bool
	Security     []SecurityRequirement
	Servers      []*Server
	Extensions   codec.Extensions
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name            string // Required
	In              string // Required: "query", "header", "path" or "cookie"
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           string
	Explode         *bool // default depends on Style
	AllowReserved   bool
	Schema          *codec.RefOr[Schema]
	Example         any
	Examples        map[string]codec.RefOr[Example]
	Content         map[string]*MediaType
	Extensions      codec.Extensions
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description string
	Content     map[string]*MediaType // Required
	Required    bool
	Extensions  codec.Extensions
}

// MediaType provides the schema and examples for one media type.
type MediaType struct {
	Schema     *codec.RefOr[Schema]
	Example    any
	Examples   map[string]codec.RefOr[Example]
	Encoding   map[string]*Encoding
	Extensions codec.Extensions
}

// Encoding describes how a single request body property is serialized.
type Encoding struct {
	ContentType   string
	Headers       map[string]codec.RefOr[Header]
	Style         string
	Explode       *bool
	AllowReserved bool
	Extensions    codec.Extensions
}

// Response describes a single response from an API operation.
type Response struct {
	Description string // Required
	Headers     map[string]codec.RefOr[Header]
	Content     map[string]*MediaType
	Links       map[string]codec.RefOr[Link]
	Extensions  codec.Extensions
}

// Header follows the Parameter structure without "name" and "in".
type Header struct {
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           string
	Explode         *bool
	AllowReserved   bool
	Schema          *codec.RefOr[Schema]
	Example         any
	Examples        map[string]codec.RefOr[Example]
	Content         map[string]*MediaType
	Extensions      codec.Extensions
}

// Example holds an example value, inline or by external URL.
type Example struct {
	Summary       string
	Description   string
	Value         any
	ExternalValue string
	Extensions    codec.Extensions
}

// Link describes a design-time link from a response to another operation.
type Link struct {
	OperationRef string
	OperationID  string
	Parameters   map[string]any
	RequestBody  any
	Description  string
	Server       *Server
	Extensions   codec.Extensions
}

// Callback maps runtime expressions to the path items invoked for them.
// Members starting with "x-" are extensions, not expressions.
type Callback struct {
	Expressions map[string]*PathItem
	Extensions  codec.Extensions
}
