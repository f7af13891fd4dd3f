package parser

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
	"github.com/erraggy/oasbind/oaserrors"
)

// Kind identifies which document format a Document holds.
type Kind int

const (
	// KindUnknown is the zero Kind, held by a Document built without a constructor.
	KindUnknown Kind = iota
	// KindOAS2 is an OpenAPI 2.0 (Swagger) document, identified by "swagger".
	KindOAS2
	// KindOAS3 is an OpenAPI 3.x document, identified by "openapi".
	KindOAS3
)

// String returns the variant name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindOAS2:
		return "OAS 2.0"
	case KindOAS3:
		return "OAS 3.x"
	default:
		return "unknown"
	}
}

// ParseKind parses a format name as accepted on the command line: "auto"
// (or empty) for detection, "v2" / "2.0" / "swagger" or "v3" / "3.x" /
// "openapi". Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindUnknown, nil
	case "v2", "2", "2.0", "swagger":
		return KindOAS2, nil
	case "v3", "3", "3.x", "openapi":
		return KindOAS3, nil
	default:
		return KindUnknown, &oaserrors.ConfigError{
			Option:  "as",
			Value:   s,
			Message: "must be one of: auto, v2, v3",
		}
	}
}

// errNoVariant is returned when encoding a Document that holds neither format.
var errNoVariant = errors.New("parser: document holds no variant")

// Document holds exactly one of an OpenAPI 2.0 or an OpenAPI 3.x graph.
// Build one with Decode or with NewOAS2Document / NewOAS3Document.
type Document struct {
	v2 *oas2.Document
	v3 *oas3.Document
}

// NewOAS2Document wraps an OpenAPI 2.0 graph.
func NewOAS2Document(doc *oas2.Document) *Document {
	return &Document{v2: doc}
}

// NewOAS3Document wraps an OpenAPI 3.x graph.
func NewOAS3Document(doc *oas3.Document) *Document {
	return &Document{v3: doc}
}

// Kind reports the held format.
func (d *Document) Kind() Kind {
	switch {
	case d == nil:
		return KindUnknown
	case d.v2 != nil:
		return KindOAS2
	case d.v3 != nil:
		return KindOAS3
	default:
		return KindUnknown
	}
}

// OAS2 returns the OpenAPI 2.0 graph and whether the document holds one.
//
// Example:
//
//	doc, _ := parser.DecodeFile("swagger.json")
//	if v2, ok := doc.OAS2(); ok {
//	    fmt.Println("Host:", v2.Host)
//	}
func (d *Document) OAS2() (*oas2.Document, bool) {
	if d.Kind() != KindOAS2 {
		return nil, false
	}
	return d.v2, true
}

// OAS3 returns the OpenAPI 3.x graph and whether the document holds one.
func (d *Document) OAS3() (*oas3.Document, bool) {
	if d.Kind() != KindOAS3 {
		return nil, false
	}
	return d.v3, true
}

// SpecVersion returns the version string declared by the document, the value
// of "swagger" or "openapi".
func (d *Document) SpecVersion() string {
	switch d.Kind() {
	case KindOAS2:
		return d.v2.Swagger
	case KindOAS3:
		return d.v3.OpenAPI
	default:
		return ""
	}
}

// OASVersion maps SpecVersion to a known OASVersion. Unrecognized version
// strings yield Unknown; they do not prevent decoding.
func (d *Document) OASVersion() OASVersion {
	v, _ := ParseVersion(d.SpecVersion())
	return v
}

// Title returns the document's info title, or "" when info is absent.
func (d *Document) Title() string {
	switch d.Kind() {
	case KindOAS2:
		if d.v2.Info != nil {
			return d.v2.Info.Title
		}
	case KindOAS3:
		if d.v3.Info != nil {
			return d.v3.Info.Title
		}
	}
	return ""
}

// Refs lists every "$ref" in the held graph with its location.
func (d *Document) Refs() []codec.RefSite {
	switch d.Kind() {
	case KindOAS2:
		return d.v2.Refs()
	case KindOAS3:
		return d.v3.Refs()
	default:
		return nil
	}
}

// MarshalJSON encodes the held graph. It never re-sniffs.
func (d *Document) MarshalJSON() ([]byte, error) {
	switch d.Kind() {
	case KindOAS2:
		return json.Marshal(d.v2)
	case KindOAS3:
		return json.Marshal(d.v3)
	default:
		return nil, errNoVariant
	}
}

// UnmarshalJSON sniffs the format and decodes with default settings.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := decode(codec.Default(), data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}
