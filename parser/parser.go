package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/oas2"
	"github.com/erraggy/oasbind/oas3"
	"github.com/erraggy/oasbind/oaserrors"
)

// DefaultMaxInputSize is the input limit used when Parser.MaxInputSize is 0.
const DefaultMaxInputSize int64 = 32 << 20

// Parser reads documents from files, readers or bytes and decodes them. It
// adds input handling around Decode: YAML input, size limits, logging and
// result metadata.
type Parser struct {
	// ExtensionPolicy controls what happens to unknown members of every object.
	// Default: codec.ExtensionsCaptureAll
	ExtensionPolicy codec.ExtensionPolicy
	// AllowYAML accepts YAML input by converting it to JSON first.
	// When false, non-JSON input fails as malformed.
	AllowYAML bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxInputSize is the largest input accepted, in bytes. It also bounds
	// the JSON produced from YAML input once aliases are expanded.
	// Default: 32MiB
	MaxInputSize int64
	// Kind forces one document format and skips detection.
	// Default: KindUnknown (detect)
	Kind Kind
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxInputSize() int64 {
	if p.MaxInputSize > 0 {
		return p.MaxInputSize
	}
	return DefaultMaxInputSize
}

// ParseResult contains the decoded document and metadata about its source.
//
// Callers should treat ParseResult as read-only after parsing.
type ParseResult struct {
	// SourcePath is the file path the document was read from, or a name
	// derived from the input method ("ParseBytes.json", "ParseReader.yaml").
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the version string declared by the document
	Version string
	// OASVersion is the enumerated version, Unknown when unrecognized
	OASVersion OASVersion
	// Document is the decoded document
	Document *Document
	// Warnings contains non-fatal issues such as an unrecognized version
	Warnings []string
	// LoadTime is the time taken to read the source
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// OAS2Document returns the OpenAPI 2.0 graph, if that is what was decoded.
func (pr *ParseResult) OAS2Document() (*oas2.Document, bool) {
	return pr.Document.OAS2()
}

// OAS3Document returns the OpenAPI 3.x graph, if that is what was decoded.
func (pr *ParseResult) OAS3Document() (*oas3.Document, bool) {
	return pr.Document.OAS3()
}

// IsOAS2 reports whether the decoded document is OpenAPI 2.0.
func (pr *ParseResult) IsOAS2() bool {
	return pr.Document.Kind() == KindOAS2
}

// IsOAS3 reports whether the decoded document is OpenAPI 3.x.
func (pr *ParseResult) IsOAS3() bool {
	return pr.Document.Kind() == KindOAS3
}

// Parse reads and decodes the file at specPath.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	f, err := os.Open(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()
	data, err := p.readAll(f)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)

	format := detectFormatFromPath(specPath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	res, err := p.parse(data, format)
	if err != nil {
		return nil, withSource(err, specPath)
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader reads r to the end and decodes it.
// SourcePath is set to ParseReader.json or ParseReader.yaml.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readAll(r)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)
	res, err := p.parse(data, detectFormatFromContent(data))
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes data.
// SourcePath is set to ParseBytes.json or ParseBytes.yaml.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if int64(len(data)) > p.maxInputSize() {
		return nil, p.tooLarge()
	}
	res, err := p.parse(data, detectFormatFromContent(data))
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) readAll(r io.Reader) ([]byte, error) {
	limit := p.maxInputSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, p.tooLarge()
	}
	return data, nil
}

func (p *Parser) tooLarge() error {
	return &oaserrors.ConfigError{
		Option:  "MaxInputSize",
		Value:   p.maxInputSize(),
		Message: "input exceeds the maximum size",
	}
}

func (p *Parser) parse(data []byte, format SourceFormat) (*ParseResult, error) {
	log := p.log()
	jsonData := data
	if format == SourceFormatYAML {
		if !p.AllowYAML {
			log.Debug("input is not JSON and YAML is disabled", "size", len(data))
		} else {
			converted, err := yamlToJSON(data, p.maxInputSize())
			if errors.Is(err, errYAMLExpansion) {
				return nil, &oaserrors.ConfigError{
					Option:  "MaxInputSize",
					Value:   p.maxInputSize(),
					Message: "YAML aliases expand beyond the maximum size",
				}
			}
			if err != nil {
				return nil, &oaserrors.ParseError{Message: "invalid YAML", Cause: err}
			}
			log.Debug("converted YAML input to JSON", "yamlSize", len(data), "jsonSize", len(converted))
			jsonData = converted
		}
	}
	if format == SourceFormatUnknown {
		format = SourceFormatJSON
	}

	doc, err := DecodeAs(&codec.Context{ExtensionPolicy: p.ExtensionPolicy}, p.Kind, jsonData)
	if err != nil {
		log.Debug("decode failed", "error", err)
		return nil, err
	}

	res := &ParseResult{
		SourceFormat: format,
		Version:      doc.SpecVersion(),
		OASVersion:   doc.OASVersion(),
		Document:     doc,
		Warnings:     make([]string, 0),
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	if !res.OASVersion.IsValid() {
		msg := fmt.Sprintf("unrecognized %s version %q", doc.Kind(), res.Version)
		log.Warn(msg)
		res.Warnings = append(res.Warnings, msg)
	}
	log.Info("decoded document",
		"kind", doc.Kind().String(),
		"version", res.Version,
		"paths", res.Stats.PathCount,
		"operations", res.Stats.OperationCount,
	)
	return res, nil
}
