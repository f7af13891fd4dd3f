package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/oasbind"
	"github.com/erraggy/oasbind/cmd/oasbind/commands"
)

// commandNames lists the commands offered as suggestions for typos.
var commandNames = []string{"decode", "refs", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	var err error

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasbind %s\n", oasbind.Version())
		fmt.Println(oasbind.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "decode":
		err = commands.HandleDecode(os.Args[2:])
	case "refs":
		err = commands.HandleRefs(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `oasbind - Decode and inspect OpenAPI 2.0 and 3.x documents

Usage:
  oasbind <command> [options]

Commands:
  decode     Decode a document and print it re-encoded as JSON or YAML
  refs       List every $ref with its location
  mcp        Run an MCP server over stdio
  version    Show version information
  help       Show this help message

Examples:
  oasbind decode openapi.json
  oasbind decode --yaml --format yaml openapi.yaml
  oasbind refs --format json openapi.json

Run 'oasbind <command> --help' for more information on a command.
`)
}
