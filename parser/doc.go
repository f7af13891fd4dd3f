// Package parser decodes OpenAPI documents whose version is not known upfront.
//
// Decode sniffs the input and tries each candidate format in a fixed order:
// OAS 2.0 (selected by a "swagger" member) and then OAS 3.x (selected by an
// "openapi" member). The first candidate that decodes wins. When none does,
// the error is an *oaserrors.VariantError carrying one diagnostic per
// candidate, so callers can see why each format rejected the input.
//
// # Quick Start
//
//	doc, err := parser.DecodeFile("openapi.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if v3, ok := doc.OAS3(); ok {
//		fmt.Println(v3.Info.Title)
//	}
//
// When the version is known, DecodeOAS2 and DecodeOAS3 skip detection.
// Encode writes a Document back out through the graph it already holds and
// never re-detects the version.
//
// # Parser and Options
//
// Parser wraps Decode with input handling: files, readers and byte slices,
// optional YAML input, a size limit and structured logging. ParseResult
// carries the decoded Document along with the declared version, source format,
// warnings and DocumentStats.
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//		parser.WithYAML(true),
//		parser.WithExtensionPolicy(codec.ExtensionsPrefixOnly),
//	)
//
// YAML input is converted to JSON before decoding. Mapping order is kept,
// aliases are expanded and merge keys are applied. Integer keys such as
// response codes become strings.
//
// A document declaring a version outside the known releases still decodes
// when its shape fits; ParseResult.Warnings records the unrecognized version.
//
// # Errors
//
// Every failure can be classified with errors.Is:
//   - oaserrors.ErrMalformedInput: the bytes are not JSON (or YAML, when enabled)
//   - oaserrors.ErrNoVariantMatched: no candidate format decoded the input
//   - oaserrors.ErrConfig: invalid options or input over the size limit
//
// References ($ref) are never resolved. Document.Refs lists them in place.
package parser
