// ABOUTME: CLI command showing the dense 7-day daily series.
// ABOUTME: Renders a per-day table with simple consumption bars.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/stats"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"week"},
	Short:   "Show the last 7 days, day by day",
	Long: `Show a day-by-day breakdown of the last 7 days, including today.
Days without events are shown with zeros so gaps stay visible.

EXAMPLES:

  taper recent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := repo.ListEvents(nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		snap := stats.Compute(events, cfg.PriceDefaults(), time.Now())

		faint := color.New(color.Faint)
		for _, day := range snap.Recent {
			var dayCost float64
			for _, c := range models.AllCategories {
				dayCost += day.Cost[c]
			}

			fmt.Printf("%s  %s %5.2fg  %s %4.1f  %6.2f  %s\n",
				faint.Sprint(day.Date),
				padRight("herbe+hash", 10),
				day.Weight[models.CategoryHerb]+day.Weight[models.CategoryHash],
				"cig",
				day.Count[models.CategoryCigarette],
				dayCost,
				bar(day.Count[models.CategoryHerb]+day.Count[models.CategoryHash]+day.Count[models.CategoryCigarette]))
		}

		return nil
	},
}

// bar renders a crude magnitude indicator, capped at 20 cells.
func bar(n float64) string {
	cells := int(n)
	if cells > 20 {
		cells = 20
	}
	if cells < 0 {
		cells = 0
	}
	return strings.Repeat("█", cells)
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
