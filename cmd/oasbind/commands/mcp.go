package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasbind/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects or
// the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasbind mcp\n\n")
		Writef(output, "Run an MCP server over stdio exposing the decode and refs tools.\n\n")
		Writef(output, "Environment:\n")
		for _, line := range mcpserver.EnvHelp() {
			Writef(output, "  %s\n", line)
		}
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
