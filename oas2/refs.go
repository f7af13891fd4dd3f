package oas2

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
		for _, path := range maputil.SortedKeys(doc.Paths) {
			if item := doc.Paths[path]; item != nil {
				r.w.Push(path)
				r.pathItem(item)
				r.w.Pop()
			}
		}
		r.w.Pop()
	}
	codec.VisitRefOrMap(r.w, "definitions", doc.Definitions, r.schema)
	r.parameterMap(doc.Parameters)
	if len(doc.Responses) > 0 {
		r.w.Push("responses")
		for _, name := range maputil.SortedKeys(doc.Responses) {
			if resp := doc.Responses[name]; resp != nil {
				r.w.Push(name)
				r.response(resp)
				r.w.Pop()
			}
		}
		r.w.Pop()
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
	codec.VisitRefOrMap(r.w, "responses", op.Responses, r.response)
}

func (r refWalker) parameterMap(params map[string]*Parameter) {
	if len(params) == 0 {
		return
	}
	r.w.Push("parameters")
	for _, name := range maputil.SortedKeys(params) {
		if p := params[name]; p != nil {
			r.w.Push(name)
			r.parameter(p)
			r.w.Pop()
		}
	}
	r.w.Pop()
}

func (r refWalker) parameter(p *Parameter) {
	codec.VisitRefOr(r.w, "schema", p.Schema, r.schema)
}

func (r refWalker) response(resp *Response) {
	codec.VisitRefOr(r.w, "schema", resp.Schema, r.schema)
}

func (r refWalker) schema(s *Schema) {
	codec.VisitRefOr(r.w, "items", s.Items, r.schema)
	codec.VisitRefOrMap(r.w, "properties", s.Properties, r.schema)
	if s.AdditionalProperties != nil {
		codec.VisitRefOr(r.w, "additionalProperties", s.AdditionalProperties.Schema, r.schema)
	}
	codec.VisitRefOrSlice(r.w, "allOf", s.AllOf, r.schema)
}
