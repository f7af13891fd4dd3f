package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasbind/codec"
)

// RefsFlags contains flags for the refs command
type RefsFlags struct {
	inputFlags
	Format    string
	LocalOnly bool
	Quiet     bool
}

// SetupRefsFlags creates and configures a FlagSet for the refs command.
func SetupRefsFlags() (*flag.FlagSet, *RefsFlags) {
	fs := flag.NewFlagSet("refs", flag.ContinueOnError)
	flags := &RefsFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.LocalOnly, "local", false, "only list same-document references")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers or summary")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers or summary")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasbind refs [flags] <file|->\n\n")
		Writef(output, "List every $ref in a document with its location. References are not followed.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasbind refs openapi.json\n")
		Writef(output, "  oasbind refs --format json --local openapi.json\n")
		Writef(output, "  oasbind refs -q openapi.json | cut -f2 | sort | uniq -c\n")
	}

	return fs, flags
}

// HandleRefs executes the refs command
func HandleRefs(args []string) error {
	fs, flags := SetupRefsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("refs command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	result, err := flags.parse(specPath)
	if err != nil {
		return err
	}

	sites := result.Document.Refs()
	if flags.LocalOnly {
		sites = localSites(sites)
	}

	if flags.Format != FormatText {
		if sites == nil {
			sites = []codec.RefSite{}
		}
		return RenderDetail(os.Stdout, sites, flags.Format)
	}

	headers := []string{"PATH", "REF", "SECTION"}
	rows := make([][]string, 0, len(sites))
	for _, site := range sites {
		rows = append(rows, []string{site.Path, site.Ref, site.Section})
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	if !flags.Quiet {
		Writef(os.Stderr, "%d references in %s\n", len(sites), FormatSpecPath(specPath))
	}
	return nil
}

func localSites(sites []codec.RefSite) []codec.RefSite {
	var out []codec.RefSite
	for _, site := range sites {
		if site.Local {
			out = append(out, site)
		}
	}
	return out
}
