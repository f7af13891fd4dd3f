// Package oasbind binds OpenAPI documents to typed Go values.
//
// oasbind decodes OpenAPI 2.0 (Swagger) and OpenAPI 3.x JSON documents into
// typed object graphs and encodes them back. Three properties hold across
// every object type:
//
//   - Unknown members are kept. Any key an object type does not declare is
//     captured in that object's Extensions and re-emitted at the same level.
//   - Reference-or-inline positions are typed. codec.RefOr[T] holds either a
//     "$ref" string or an inline T, never both.
//   - The format is detected. parser.Decode tries OpenAPI 2.0 and then 3.x and
//     reports per-format diagnostics when neither fits.
//
// # Packages
//
//   - codec: extension capture, RefOr[T], reference inventory and the
//     decode settings (ExtensionPolicy)
//   - oas2: the OpenAPI 2.0 object graph
//   - oas3: the OpenAPI 3.x object graph
//   - parser: format detection, YAML input, functional options and statistics
//   - oaserrors: error types for errors.Is and errors.As
//
// # Quick Start
//
//	doc, err := parser.DecodeFile("openapi.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Kind(), doc.Title())
//	for _, site := range doc.Refs() {
//		fmt.Println(site.Path, "->", site.Ref)
//	}
//
// The oasbind command line tool (cmd/oasbind) exposes decode and refs
// commands and an MCP server over stdio.
//
// References are never resolved or fetched, and documents are not validated
// beyond their shape.
package oasbind
