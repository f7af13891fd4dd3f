// Package oas3 models OpenAPI 3.x ("openapi") documents.
//
// Reusable objects live in Components and are referenced with codec.RefOr
// wherever the format allows a "$ref" in place of an inline value: schemas,
// parameters, responses, headers, examples, request bodies, links, callbacks
// and security schemes. Every object except a bare reference carries its
// vendor extensions, which are re-emitted on encode.
package oas3
