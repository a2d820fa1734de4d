// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdufour/taper/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your consumption
data through a standardized protocol. The server communicates via
stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "taper": {
        "command": "taper",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_event           Record a consumption event
  list_events         List recent events
  delete_event        Delete an event by ID
  get_stats           Windowed statistics snapshot
  get_price_defaults  Default unit prices

AVAILABLE RESOURCES:

  taper://recent      Last 10 events
  taper://today       Today's events
  taper://stats       Full statistics snapshot`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, cfg.PriceDefaults())
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
