// Package oaserrors provides structured error types for the oasbind library.
//
// Import path: github.com/erraggy/oasbind/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the ways decoding or encoding an
// OpenAPI document can fail.
//
// # Error Types
//
//   - [ParseError]: the input is not syntactically valid JSON
//   - [VariantError]: neither the OAS 2.0 nor the OAS 3.x root shape matched
//   - [ShapeError]: a required field is missing or a field has the wrong JSON type
//   - [CollisionError]: an extension key equals a declared field key at encode time
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrMalformedInput]: Matches any [ParseError]
//   - [ErrNoVariantMatched]: Matches any [VariantError]
//   - [ErrShapeMismatch]: Matches any [ShapeError]
//   - [ErrExtensionCollision]: Matches any [CollisionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// A [VariantError] does not unwrap to its per-candidate errors, so the five
// kinds never overlap. Inspect [VariantError.Candidates] for the reason each
// candidate format was rejected:
//
//	var ve *oaserrors.VariantError
//	if errors.As(err, &ve) {
//	    for _, c := range ve.Candidates {
//	        fmt.Printf("%s rejected: %v\n", c.Variant, c.Err)
//	    }
//	}
package oaserrors
