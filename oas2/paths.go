package oas2

import "github.com/erraggy/oasbind/codec"

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref        string // "$ref" to an external path item definition
	Get        *Operation
	Put        *Operation
	Post       *Operation
	Delete     *Operation
	Options    *Operation
	Head       *Operation
	Patch      *Operation
	Parameters []codec.RefOr[Parameter]
	Extensions codec.Extensions
}

// Operations returns the operations of a path item keyed by lower-case HTTP
// method. Methods without an operation are omitted.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 7)
	for method, op := range map[string]*Operation{
		"get":     p.Get,
		"put":     p.Put,
		"post":    p.Post,
		"delete":  p.Delete,
		"options": p.Options,
		"head":    p.Head,
		"patch":   p.Patch,
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
	Consumes     []string
	Produces     []string
	Parameters   []codec.RefOr[Parameter]
	Responses    map[string]codec.RefOr[Response] // Required; keyed by status code or "default"
	Schemes      []string
	Deprecated   bool
	Security     []SecurityRequirement
	Extensions   codec.Extensions
}

// Response describes a single response from an API operation.
type Response struct {
	Description string // Required
	Schema      *codec.RefOr[Schema]
	Headers     map[string]*Header
	Examples    map[string]any // keyed by MIME type
	Extensions  codec.Extensions
}

// Header describes a response header. Headers are restricted to simple types.
type Header struct {
	Description      string
	Type             string // Required: "string", "number", "integer", "boolean" or "array"
	Format           string
	Items            *Items
	CollectionFormat string
	Default          any
	Validations
	Extensions codec.Extensions
}
