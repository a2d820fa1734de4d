// ABOUTME: Root Cobra command for taper CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/jdufour/taper/internal/config"
	"github.com/jdufour/taper/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "taper",
	Short: "Personal consumption tracker for cutting down",
	Long: `Taper is a CLI tool for tracking cannabis and tobacco consumption,
built to help you cut down.

WHAT IT TRACKS:

  herbe      cannabis flower, measured in grams
  hash       hash, measured in grams
  cigarette  cigarettes, counted in units

QUICK START:

  $ taper log herbe 0.5g               # Log half a gram
  $ taper log cigarette 2              # Log two cigarettes
  $ taper log hash 1g --price 12       # Log with the price you paid
  $ taper list                         # See recent events
  $ taper stats                        # Week/month dashboard
  $ taper recent                       # Last 7 days, day by day

PRICING:

  Costs are derived from your configured default prices (per gram for
  herbe and hash, per cigarette otherwise) unless you pass --price.
  Set defaults with 'taper config set price_per_gram_herbe 10'.

ADVICE:

  $ taper advice    # One AI-generated tip per day, built from your stats

MCP INTEGRATION:

  Run 'taper mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Events are stored in SQLite at ~/.local/share/taper/taper.db by
  default. Set backend "charm" in the config for cloud-synced storage.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "config" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
