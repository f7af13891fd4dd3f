package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// DecodeFlags contains flags for the decode command
type DecodeFlags struct {
	inputFlags
	Format string
	Quiet  bool
}

// SetupDecodeFlags creates and configures a FlagSet for the decode command.
// Returns the FlagSet and a DecodeFlags struct with bound flag variables.
func SetupDecodeFlags() (*flag.FlagSet, *DecodeFlags) {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	flags := &DecodeFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasbind decode [flags] <file|->\n\n")
		Writef(output, "Decode an OpenAPI 2.0 or 3.x document and print it re-encoded.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasbind decode openapi.json\n")
		Writef(output, "  oasbind decode --yaml --format yaml openapi.yaml\n")
		Writef(output, "  oasbind decode --as v3 --extensions strict openapi.json\n")
		Writef(output, "  cat openapi.json | oasbind decode -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Decoding successful\n")
		Writef(output, "  1    The input is malformed or no document format matched\n")
	}

	return fs, flags
}

// HandleDecode executes the decode command
func HandleDecode(args []string) error {
	fs, flags := SetupDecodeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("decode command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	result, err := flags.parse(specPath)
	if err != nil {
		return err
	}

	// Diagnostics go to stderr to keep stdout clean for the document.
	if !flags.Quiet {
		OutputSpecHeader(os.Stderr, specPath, result)
		OutputSpecStats(os.Stderr, result)
		OutputWarnings(os.Stderr, result.Warnings)
		Writef(os.Stderr, "\n")
	}

	data, err := MarshalDocument(result.Document, flags.Format)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if _, err := fmt.Fprintln(os.Stdout, trimNewline(data)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
