package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	extensionPolicy codec.ExtensionPolicy
	allowYAML       bool
	logger          Logger
	maxInputSize    int64
	kind            Kind

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses a document using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithYAML(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		ExtensionPolicy: cfg.extensionPolicy,
		AllowYAML:       cfg.allowYAML,
		Logger:          cfg.logger,
		MaxInputSize:    cfg.maxInputSize,
		Kind:            cfg.kind,
	}

	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("parser: no input source specified")
	}
	if parseErr != nil {
		if cfg.sourceName != nil {
			parseErr = withSource(parseErr, *cfg.sourceName)
		}
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithExtensionPolicy selects how unknown object members are treated.
// Default: codec.ExtensionsCaptureAll
func WithExtensionPolicy(policy codec.ExtensionPolicy) Option {
	return func(cfg *parseConfig) error {
		switch policy {
		case codec.ExtensionsCaptureAll, codec.ExtensionsPrefixOnly, codec.ExtensionsStrict:
			cfg.extensionPolicy = policy
			return nil
		default:
			return fmt.Errorf("parser: unknown extension policy %d", int(policy))
		}
	}
}

// WithYAML enables or disables YAML input.
// Default: false
func WithYAML(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.allowYAML = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed.
//
// Example:
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.json"),
//	    parser.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxInputSize sets the largest input accepted, in bytes.
// A value of 0 means use the default (32MiB).
// Returns an error if size is negative.
func WithMaxInputSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("parser: maxInputSize cannot be negative")
		}
		cfg.maxInputSize = size
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// This is useful when parsing from bytes or a reader, where the default
// names ("ParseBytes.json", "ParseReader.json") are not descriptive.
// The name also appears in parse errors.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return fmt.Errorf("parser: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}

// WithKind forces the document format instead of detecting it.
// Default: KindUnknown (detect)
func WithKind(kind Kind) Option {
	return func(cfg *parseConfig) error {
		switch kind {
		case KindUnknown, KindOAS2, KindOAS3:
			cfg.kind = kind
			return nil
		default:
			return fmt.Errorf("parser: unknown document kind %d", int(kind))
		}
	}
}
