package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openmgmt/yangtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: yangtools mcp\n\n")
		Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "The server exposes validate and parse tools to MCP clients such as\n")
		Writef(fs.Output(), "editors and agents. Defaults are configured via YANGTOOLS_* environment\n")
		Writef(fs.Output(), "variables; see the server instructions for the full list.\n\n")
		Writef(fs.Output(), "Example client config:\n")
		Writef(fs.Output(), "  {\"command\": \"yangtools\", \"args\": [\"mcp\"]}\n")
	}

	return fs
}

// HandleMCP executes the mcp command: it blocks serving stdio until the
// client disconnects or the process is signalled.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

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

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
