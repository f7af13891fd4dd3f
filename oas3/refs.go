package oas3

import (
	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/internal/maputil"
)

// Refs lists every "$ref" in the document with its location, in a stable
// order. References are reported as written and never followed.
func (doc *Document) Refs() []codec.RefSite {
	r := refWalker{w: codec.NewRefWalker()}
	r.document(doc)
	return r.w.Sites()
}

type refWalker struct {
	w *codec.RefWalker
}

func (r refWalker) document(doc *Document) {
	if len(doc.Paths) > 0 {
		r.w.Push("paths")
		r.pathItems(doc.Paths)
		r.w.Pop()
	}
	if c := doc.Components; c != nil {
		r.w.Push("components")
		r.components(c)
		r.w.Pop()
	}
}

func (r refWalker) components(c *Components) {
	codec.VisitRefOrMap(r.w, "schemas", c.Schemas, r.schema)
	codec.VisitRefOrMap(r.w, "responses", c.Responses, r.response)
	codec.VisitRefOrMap(r.w, "parameters", c.Parameters, r.parameter)
	codec.VisitRefOrMap(r.w, "examples", c.Examples, nil)
	codec.VisitRefOrMap(r.w, "requestBodies", c.RequestBodies, r.requestBody)
	codec.VisitRefOrMap(r.w, "headers", c.Headers, r.header)
	codec.VisitRefOrMap(r.w, "securitySchemes", c.SecuritySchemes, nil)
	codec.VisitRefOrMap(r.w, "links", c.Links, nil)
	codec.VisitRefOrMap(r.w, "callbacks", c.Callbacks, r.callback)
}

func (r refWalker) pathItems(items map[string]*PathItem) {
	for _, path := range maputil.SortedKeys(items) {
		if item := items[path]; item != nil {
			r.w.Push(path)
			r.pathItem(item)
			r.w.Pop()
		}
	}
}

func (r refWalker) pathItem(item *PathItem) {
	if item.Ref != "" {
		// Recorded at the path item itself, like every other reference.
		r.w.Add(item.Ref)
	}
	codec.VisitRefOrSlice(r.w, "parameters", item.Parameters, r.parameter)
	ops := item.Operations()
	for _, method := range maputil.SortedKeys(ops) {
		r.w.Push(method)
		r.operation(ops[method])
		r.w.Pop()
	}
}

func (r refWalker) operation(op *Operation) {
	codec.VisitRefOrSlice(r.w, "parameters", op.Parameters, r.parameter)
	codec.VisitRefOr(r.w, "requestBody", op.RequestBody, r.requestBody)
	codec.VisitRefOrMap(r.w, "responses", op.Responses, r.response)
	codec.VisitRefOrMap(r.w, "callbacks", op.Callbacks, r.callback)
}

func (r refWalker) callback(cb *Callback) {
	r.pathItems(cb.Expressions)
}

func (r refWalker) parameter(p *Parameter) {
	codec.VisitRefOr(r.w, "schema", p.Schema, r.schema)
	codec.VisitRefOrMap(r.w, "examples", p.Examples, nil)
	r.content(p.Content)
}

func (r refWalker) header(h *Header) {
	codec.VisitRefOr(r.w, "schema", h.Schema, r.schema)
	codec.VisitRefOrMap(r.w, "examples", h.Examples, nil)
	r.content(h.Content)
}

func (r refWalker) requestBody(body *RequestBody) {
	r.content(body.Content)
}

func (r refWalker) response(resp *Response) {
	codec.VisitRefOrMap(r.w, "headers", resp.Headers, r.header)
	r.content(resp.Content)
	codec.VisitRefOrMap(r.w, "links", resp.Links, nil)
}

func (r refWalker) content(content map[string]*MediaType) {
	if len(content) == 0 {
		return
	}
	r.w.Push("content")
	for _, name := range maputil.SortedKeys(content) {
		mt := content[name]
		if mt == nil {
			continue
		}
		r.w.Push(name)
		codec.VisitRefOr(r.w, "schema", mt.Schema, r.schema)
		codec.VisitRefOrMap(r.w, "examples", mt.Examples, nil)
		if len(mt.Encoding) > 0 {
			r.w.Push("encoding")
			for _, prop := range maputil.SortedKeys(mt.Encoding) {
				if enc := mt.Encoding[prop]; enc != nil {
					r.w.Push(prop)
					codec.VisitRefOrMap(r.w, "headers", enc.Headers, r.header)
					r.w.Pop()
				}
			}
			r.w.Pop()
		}
		r.w.Pop()
	}
	r.w.Pop()
}

func (r refWalker) schema(s *Schema) {
	codec.VisitRefOr(r.w, "items", s.Items, r.schema)
	codec.VisitRefOrMap(r.w, "properties", s.Properties, r.schema)
	if s.AdditionalProperties != nil {
		codec.VisitRefOr(r.w, "additionalProperties", s.AdditionalProperties.Schema, r.schema)
	}
	codec.VisitRefOrSlice(r.w, "allOf", s.AllOf, r.schema)
	codec.VisitRefOrSlice(r.w, "oneOf", s.OneOf, r.schema)
	codec.VisitRefOrSlice(r.w, "anyOf", s.AnyOf, r.schema)
	codec.VisitRefOr(r.w, "not", s.Not, r.schema)
}
