// ABOUTME: CLI command for listing consumption events.
// ABOUTME: Supports filtering by category and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/models"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List consumption events",
	Long: `List recent consumption events.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  CATEGORY  QUANTITY  PRICE  (NOTE)

  The ID is an 8-character prefix you can use with 'taper delete'.

EXAMPLES:

  taper list                      # Show last 20 events (all categories)
  taper list --category herbe     # Show only herbe events
  taper list -c cigarette -n 50   # Show last 50 cigarette events`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var category *models.Category
		if listCategory != "" {
			if !models.IsValidCategory(listCategory) {
				return fmt.Errorf("unknown category: %s", listCategory)
			}
			c := models.Category(listCategory)
			category = &c
		}

		events, err := repo.ListEvents(category, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range events {
			price := ""
			if e.Price != nil {
				price = fmt.Sprintf(" %.2f", *e.Price)
			}
			note := ""
			if e.Note != nil && *e.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(*e.Note, 30))
			}
			fmt.Printf("%s %s %s %s%s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.ConsumedAt.Format("2006-01-02 15:04")),
				padRight(string(e.Category), 10),
				e.QuantityText,
				price,
				note)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum number of events")
	rootCmd.AddCommand(listCmd)
}
