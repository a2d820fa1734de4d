// ABOUTME: CLI commands for exporting and importing consumption data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/charm"
	"github.com/jdufour/taper/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export consumption data",
	Long: `Export consumption data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown table (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include data since this date (YYYY-MM-DD, markdown only)

EXAMPLES:

  taper export json                      # Export all data as JSON
  taper export json -o backup.json       # Save to file
  taper export markdown --since 2026-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		all, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.EncodeJSON(all)
		case "yaml":
			data, err = storage.EncodeYAML(all)
		case "markdown":
			var since *time.Time
			if exportSince != "" {
				t, err := time.Parse("2006-01-02", exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			events, err := all.ToEvents()
			if err != nil {
				return err
			}
			data = []byte(storage.MarkdownTable(events, since))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}

		fmt.Print(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import consumption data",
	Long: `Import consumption data from a JSON export file.

Imported events keep their original IDs and timestamps.

EXAMPLES:

  taper import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse import file: %w", err)
		}

		// On the charm backend, sync once after the bulk import instead
		// of after every event.
		if client, ok := repo.(*charm.Client); ok {
			client.SetAutoSync(false)
			defer func() {
				client.SetAutoSync(true)
				_ = client.Sync()
			}()
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d events", len(data.Events))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since this date (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
