package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
	"github.com/erraggy/oasbind/oaserrors"
)

// candidate is one document format the decoder may match. Candidates are
// tried in order; the first to decode wins.
type candidate struct {
	kind   Kind
	key    string // discriminant root member
	decode func(c *codec.Context, data []byte) (*Document, error)
}

var candidates = []candidate{
	{
		kind: KindOAS2,
		key:  "swagger",
		decode: func(c *codec.Context, data []byte) (*Document, error) {
			var doc oas2.Document
			if err := doc.DecodeJSON(c, data); err != nil {
				return nil, err
			}
			return NewOAS2Document(&doc), nil
		},
	},
	{
		kind: KindOAS3,
		key:  "openapi",
		decode: func(c *codec.Context, data []byte) (*Document, error) {
			var doc oas3.Document
			if err := doc.DecodeJSON(c, data); err != nil {
				return nil, err
			}
			return NewOAS3Document(&doc), nil
		},
	},
}

var errEmptyInput = errors.New("empty input")

// Decode reads a JSON document of either format with default settings.
//
// Each candidate format is tried in order, OpenAPI 2.0 then 3.x. A candidate
// is attempted only when its discriminant member ("swagger" or "openapi") is
// present; a failure moves on to the next one. When none succeeds the error is
// an *oaserrors.VariantError listing why each candidate was rejected.
// Syntactically invalid input fails with an *oaserrors.ParseError instead.
func Decode(data []byte) (*Document, error) {
	return decode(codec.Default(), data)
}

// DecodeWithContext is Decode with explicit decode settings. A nil context
// uses the defaults.
func DecodeWithContext(c *codec.Context, data []byte) (*Document, error) {
	if c == nil {
		c = codec.Default()
	}
	return decode(c, data)
}

// DecodeAs decodes data as the given format without detection. KindUnknown
// detects the format the way DecodeWithContext does. A nil context uses the
// defaults.
func DecodeAs(c *codec.Context, kind Kind, data []byte) (*Document, error) {
	if c == nil {
		c = codec.Default()
	}
	for _, cand := range candidates {
		if cand.kind != kind {
			continue
		}
		if err := checkSyntax(data); err != nil {
			return nil, err
		}
		return cand.decode(c, data)
	}
	return decode(c, data)
}

// DecodeString is Decode for a string.
func DecodeString(s string) (*Document, error) {
	return Decode([]byte(s))
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	return Decode(data)
}

// DecodeFile reads and decodes the file at path. Parse errors name the file.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, withSource(err, path)
	}
	return doc, nil
}

// DecodeOAS2 decodes data as OpenAPI 2.0 without sniffing. Failures are
// shape mismatches or malformed input, never a VariantError.
func DecodeOAS2(data []byte) (*oas2.Document, error) {
	if err := checkSyntax(data); err != nil {
		return nil, err
	}
	var doc oas2.Document
	if err := doc.DecodeJSON(codec.Default(), data); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeOAS2Reader is DecodeOAS2 for a reader.
func DecodeOAS2Reader(r io.Reader) (*oas2.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	return DecodeOAS2(data)
}

// DecodeOAS3 decodes data as OpenAPI 3.x without sniffing.
func DecodeOAS3(data []byte) (*oas3.Document, error) {
	if err := checkSyntax(data); err != nil {
		return nil, err
	}
	var doc oas3.Document
	if err := doc.DecodeJSON(codec.Default(), data); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeOAS3Reader is DecodeOAS3 for a reader.
func DecodeOAS3Reader(r io.Reader) (*oas3.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	return DecodeOAS3(data)
}

// Encode writes the held graph as compact JSON.
func Encode(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

// EncodeIndent is Encode with json.MarshalIndent formatting.
func EncodeIndent(doc *Document, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(doc, prefix, indent)
}

func decode(c *codec.Context, data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, rejectAll(errEmptyInput)
	}
	if err := checkSyntax(data); err != nil {
		return nil, err
	}
	if kind := codec.Kind(data); kind != codec.KindObject {
		return nil, rejectAll(&oaserrors.ShapeError{
			Object:   "Document",
			Expected: codec.KindObject,
			Actual:   kind,
		})
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, locate(err, data)
	}

	variantErr := &oaserrors.VariantError{}
	for _, cand := range candidates {
		if _, ok := members[cand.key]; !ok {
			variantErr.Candidates = append(variantErr.Candidates, oaserrors.CandidateError{
				Variant: cand.kind.String(),
				Err: &oaserrors.ShapeError{
					Path:    []string{cand.key},
					Object:  "Document",
					Message: "required field missing",
				},
			})
			continue
		}
		doc, err := cand.decode(c, data)
		if err == nil {
			return doc, nil
		}
		variantErr.Candidates = append(variantErr.Candidates, oaserrors.CandidateError{
			Variant: cand.kind.String(),
			Err:     err,
		})
	}
	return nil, variantErr
}

// rejectAll records the same reason against every candidate.
func rejectAll(reason error) error {
	variantErr := &oaserrors.VariantError{}
	for _, cand := range candidates {
		variantErr.Candidates = append(variantErr.Candidates, oaserrors.CandidateError{
			Variant: cand.kind.String(),
			Err:     reason,
		})
	}
	return variantErr
}

func checkSyntax(data []byte) error {
	if err := codec.CheckSyntax(data); err != nil {
		return locate(err, data)
	}
	return nil
}

// locate fills in the line and column of a ParseError from its byte offset.
func locate(err error, data []byte) error {
	var pe *oaserrors.ParseError
	if !errors.As(err, &pe) {
		return &oaserrors.ParseError{Cause: err}
	}
	if pe.Offset <= 0 || pe.Line > 0 {
		return pe
	}
	out := *pe
	out.Line, out.Column = lineColumn(data, out.Offset)
	return &out
}

// lineColumn converts a 1-based byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	column = int(offset) - bytes.LastIndexByte(prefix, '\n') - 1
	return line, column
}

// withSource names the input in a ParseError.
func withSource(err error, source string) error {
	var pe *oaserrors.ParseError
	if !errors.As(err, &pe) || pe.Path != "" {
		return err
	}
	out := *pe
	out.Path = source
	return &out
}
