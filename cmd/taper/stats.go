// ABOUTME: CLI command for the consumption statistics dashboard.
// ABOUTME: Renders week/month sums, active-day averages, and lifetime cost.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"st"},
	Short:   "Show consumption statistics",
	Long: `Show windowed consumption statistics.

The week window covers the trailing 7 days and the month window the
trailing 30 days, both including today. Daily averages are computed
over active days (days with at least one event in the month window),
not over the full 30 days: they describe a typical day when you did
consume.

EXAMPLES:

  taper stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := repo.ListEvents(nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		snap := stats.Compute(events, cfg.PriceDefaults(), time.Now())

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Last 7 days")
		printWindow(snap.WeekCount, snap.WeekWeight, snap.WeekCost)

		bold.Println("\nLast 30 days")
		printWindow(snap.MonthCount, snap.MonthWeight, snap.MonthCost)

		bold.Printf("\nPer active day ")
		faint.Printf("(%d active of last 30)\n", snap.ActiveDays)
		for _, c := range models.AllCategories {
			if models.IsWeighed(c) {
				fmt.Printf("  %s %.2f g, %.2f\n",
					padRight(string(c), 10), snap.DailyAvgWeight[c], snap.DailyAvgCost[c])
			} else {
				fmt.Printf("  %s %.2f units, %.2f\n",
					padRight(string(c), 10), snap.DailyAvgCount[c], snap.DailyAvgCost[c])
			}
		}

		bold.Printf("\nTotal spent: ")
		fmt.Printf("%.2f\n", snap.TotalCost)

		return nil
	},
}

func printWindow(count, weight, cost map[models.Category]float64) {
	for _, c := range models.AllCategories {
		if models.IsWeighed(c) {
			fmt.Printf("  %s %.0f sessions, %.2f g, %.2f\n",
				padRight(string(c), 10), count[c], weight[c], cost[c])
		} else {
			fmt.Printf("  %s %.1f units, %.2f\n",
				padRight(string(c), 10), count[c], cost[c])
		}
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
