// ABOUTME: CLI command for logging consumption events.
// ABOUTME: Handles companion cigarette events per user preference.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/models"
	"github.com/spf13/cobra"
)

var (
	logAt    string
	logPrice string
	logNote  string
)

var logCmd = &cobra.Command{
	Use:     "log <category> <quantity>",
	Aliases: []string{"add", "l"},
	Short:   "Log a consumption event",
	Long: `Log a consumption event. Quantity is free text; the first number in
it is used as grams (herbe, hash) or unit count (cigarette).

Examples:
  taper log herbe 0.5g
  taper log hash 1g --price 12
  taper log cigarette 2 --at "2026-03-14 21:00"
  taper log cigarette "1 clope" --note "after dinner"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]
		quantity := args[1]

		if !models.IsValidCategory(category) {
			return fmt.Errorf("unknown category: %s\nValid categories: herbe, hash, cigarette", category)
		}

		e := models.NewEvent(models.Category(category), quantity)

		// Handle --at flag
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			e.WithConsumedAt(t)
		}

		// Handle --price flag
		if logPrice != "" {
			price, err := strconv.ParseFloat(logPrice, 64)
			if err != nil || price < 0 {
				return fmt.Errorf("invalid price: %s", logPrice)
			}
			e.WithPrice(price)
		}

		// Handle --note flag
		if logNote != "" {
			e.WithNote(logNote)
		}

		if err := repo.CreateEvent(e); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		color.Green("✓ Logged %s", category)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.QuantityText)

		// Companion cigarettes alongside herbe/hash, if configured
		if models.IsWeighed(e.Category) && cfg.AutoCigarette > 0 {
			companion := models.NewEvent(models.CategoryCigarette,
				strconv.FormatFloat(cfg.AutoCigarette, 'f', -1, 64)).
				WithConsumedAt(e.ConsumedAt)
			if err := repo.CreateEvent(companion); err != nil {
				return fmt.Errorf("failed to create companion cigarette: %w", err)
			}
			color.Green("✓ Logged cigarette (auto)")
			fmt.Printf("  %s %s\n",
				color.New(color.Faint).Sprint(companion.ID.String()[:8]),
				companion.QuantityText)
		}

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	// Formats without a zone are taken as local time; stats bucket days
	// by local calendar date.
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logCmd.Flags().StringVar(&logPrice, "price", "", "explicit price paid (overrides derived cost)")
	logCmd.Flags().StringVar(&logNote, "note", "", "note for the event")
	rootCmd.AddCommand(logCmd)
}
