// Package commands provides CLI command handlers for oasbind.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasbind"
	"github.com/erraggy/oasbind/codec"
	"github.com/erraggy/oasbind/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateDocumentFormat is ValidateOutputFormat for commands that print a
// whole document, where text output has no meaning.
func ValidateDocumentFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalDocument renders v as indented JSON or as YAML. Both go through v's
// JSON encoding, so extensions and "$ref" objects come out the same way.
func MarshalDocument(v any, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		return jsonToYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// jsonToYAML re-renders JSON text as block-style YAML, keeping member order.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	plainStyle(&node)
	return yaml.Marshal(&node)
}

// plainStyle drops the flow and quoting styles the JSON reader records, so the
// encoder picks block style and quotes only where a value needs it.
func plainStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		plainStyle(child)
	}
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSpecHeader outputs the common specification header to w.
// This includes the oasbind version, specification path, and declared version.
func OutputSpecHeader(w io.Writer, specPath string, result *parser.ParseResult) {
	Writef(w, "oasbind version: %s\n", oasbind.Version())
	Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	Writef(w, "Document Type: %s\n", result.Document.Kind())
	Writef(w, "OAS Version: %s\n", result.Version)
	if title := result.Document.Title(); title != "" {
		Writef(w, "Title: %s\n", title)
	}
}

// OutputSpecStats outputs the common specification statistics to w.
func OutputSpecStats(w io.Writer, result *parser.ParseResult) {
	stats := result.Stats
	Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	Writef(w, "Paths: %d\n", stats.PathCount)
	Writef(w, "Operations: %d\n", stats.OperationCount)
	Writef(w, "Schemas: %d\n", stats.SchemaCount)
	Writef(w, "References: %d\n", stats.RefCount)
	Writef(w, "Load Time: %v\n", result.LoadTime)
}

// OutputWarnings lists non-fatal parse warnings on w.
func OutputWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	Writef(w, "Warnings:\n")
	for _, warning := range warnings {
		Writef(w, "  - %s\n", warning)
	}
}

// inputFlags are the decode settings shared by every command that reads a document.
type inputFlags struct {
	As         string
	Extensions string
	YAML       bool
}

func (f *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.As, "as", "auto", "document format: auto, v2, v3")
	fs.StringVar(&f.Extensions, "extensions", "all", "unknown member policy: all, prefix, strict")
	fs.BoolVar(&f.YAML, "yaml", false, "accept YAML input")
}

// parse reads specPath ("-" for stdin) with the settings in f.
func (f *inputFlags) parse(specPath string) (*parser.ParseResult, error) {
	kind, err := parser.ParseKind(f.As)
	if err != nil {
		return nil, err
	}
	policy, err := codec.ParseExtensionPolicy(f.Extensions)
	if err != nil {
		return nil, err
	}
	opts := []parser.Option{
		parser.WithKind(kind),
		parser.WithExtensionPolicy(policy),
		parser.WithYAML(f.YAML),
	}
	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(os.Stdin), parser.WithSourceName(FormatSpecPath(specPath)))
	} else {
		opts = append(opts, parser.WithFilePath(specPath))
	}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FormatSpecPath(specPath), err)
	}
	return result, nil
}

// trimNewline strips trailing newlines so output ends with exactly one.
func trimNewline(data []byte) string {
	return strings.TrimRight(string(data), "\n")
}
