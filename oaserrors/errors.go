// Package oaserrors provides structured error types for oasbind.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the ways a decode or
// encode can fail.
//
// # Error Categories
//
//   - ParseError: the input is not syntactically valid JSON (or YAML)
//   - VariantError: no document format matched the input
//   - ShapeError: a field is missing or has the wrong JSON type
//   - CollisionError: an extension key shadows a declared field on encode
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	doc, err := parser.Decode(data)
//	if err != nil {
//	    var shapeErr *oaserrors.ShapeError
//	    if errors.As(err, &shapeErr) {
//	        fmt.Println("bad field at", shapeErr.PathString())
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrMalformedInput indicates the input bytes are not valid JSON.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoVariantMatched indicates no document format matched the input.
	ErrNoVariantMatched = errors.New("no document variant matched")

	// ErrShapeMismatch indicates a required field is missing or a field has the wrong type.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrExtensionCollision indicates an extension key collides with a declared field.
	ErrExtensionCollision = errors.New("extension collision")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents input that could not be read as JSON at all.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Offset is the byte offset where the error occurred (0 if unknown)
	Offset int64
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "malformed input"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// CandidateError records why one candidate document format rejected the input.
type CandidateError struct {
	// Variant names the candidate, e.g. "OAS 2.0"
	Variant string
	// Err is the reason the candidate was rejected
	Err error
}

// VariantError reports that none of the candidate document formats matched.
// Candidates holds one entry per candidate in the order they were tried.
type VariantError struct {
	Candidates []CandidateError
}

// Error returns a human-readable error message.
func (e *VariantError) Error() string {
	if len(e.Candidates) == 0 {
		return "no document variant matched"
	}
	parts := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		parts = append(parts, fmt.Sprintf("%s: %v", c.Variant, c.Err))
	}
	return "no document variant matched (" + strings.Join(parts, "; ") + ")"
}

// Is reports whether target matches this error type.
// Candidate errors are deliberately not unwrapped so that a VariantError
// never also reports itself as a ShapeError.
func (e *VariantError) Is(target error) bool {
	return target == ErrNoVariantMatched
}

// Candidate returns the rejection reason recorded for the named variant.
func (e *VariantError) Candidate(variant string) (error, bool) {
	for _, c := range e.Candidates {
		if c.Variant == variant {
			return c.Err, true
		}
	}
	return nil, false
}

// ShapeError represents a structural mismatch at some position in the graph.
type ShapeError struct {
	// Path holds the segments leading to the offending value, outermost first.
	// Array indexes are encoded as "[i]".
	Path []string
	// Object is the type being decoded when the mismatch was found (e.g., "Info")
	Object string
	// Expected is the JSON type that was expected (e.g., "string", "object")
	Expected string
	// Actual is the JSON type that was found (empty if the field was missing)
	Actual string
	// Message describes the mismatch
	Message string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape mismatch"
	if p := e.PathString(); p != "" {
		msg += " at " + p
	}
	if e.Object != "" {
		msg += " (" + e.Object + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Actual != "" {
			msg += ", got " + e.Actual
		}
	}
	return msg
}

// PathString renders Path in dotted form, e.g. "paths./pets.get.parameters[0].name".
func (e *ShapeError) PathString() string {
	var b strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// WithPrefix returns err with segment prepended to its path when err is a
// *ShapeError; any other error is returned unchanged.
func WithPrefix(err error, segment string) error {
	var se *ShapeError
	if !errors.As(err, &se) {
		return err
	}
	out := *se
	out.Path = append([]string{segment}, se.Path...)
	return &out
}

// CollisionError reports an extension key that equals a declared field key of
// the object being encoded. Emitting both would make one shadow the other.
type CollisionError struct {
	// Object is the type being encoded (e.g., "Operation")
	Object string
	// Key is the colliding key
	Key string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("extension collision: %s extension %q collides with a declared field", e.Object, e.Key)
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrExtensionCollision
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
