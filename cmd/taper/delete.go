// ABOUTME: CLI command for deleting consumption events.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a consumption event",
	Long: `Delete a consumption event by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'taper list' output.

EXAMPLES:

  taper delete abc12345              # Delete by 8-char prefix
  taper rm abc1                      # Short prefix (if unique)

CAUTION:

  This permanently deletes the event. There is no undo.
  If the prefix matches multiple events, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// First, try to get the event to show what we're deleting
		e, err := repo.GetEvent(idOrPrefix)
		if err != nil {
			return fmt.Errorf("event not found: %s", idOrPrefix)
		}

		if err := repo.DeleteEvent(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}

		color.Yellow("✗ Deleted %s", e.Category)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.QuantityText)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
