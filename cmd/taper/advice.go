// ABOUTME: CLI command for AI-generated reduction advice.
// ABOUTME: One response per day, cached locally; --refresh forces a new call.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/advice"
	"github.com/jdufour/taper/internal/stats"
	"github.com/spf13/cobra"
)

var adviceRefresh bool

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Get one piece of advice for today",
	Long: `Ask the configured advice endpoint for one short piece of advice,
built from your consumption statistics.

The response is cached locally: you get at most one generated advice
per day unless you pass --refresh. Configure the endpoint with
'taper config set advice_url https://...'.

EXAMPLES:

  taper advice
  taper advice --refresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := advice.OpenCache(filepath.Join(cfg.GetDataDir(), "advice-cache"))
		if err != nil {
			return fmt.Errorf("failed to open advice cache: %w", err)
		}
		defer cache.Close()

		user := os.Getenv("USER")
		if user == "" {
			user = "local"
		}

		if !adviceRefresh {
			if cached, ok, err := cache.Get(user); err == nil && ok {
				fmt.Println(cached)
				return nil
			}
		}

		events, err := repo.ListEvents(nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		snap := stats.Compute(events, cfg.PriceDefaults(), time.Now())

		client := &advice.Client{BaseURL: cfg.AdviceURL, APIKey: cfg.GetAdviceAPIKey()}
		text, err := client.GetAdvice(cmd.Context(), advice.BuildPrompt(snap))
		if err != nil {
			return fmt.Errorf("failed to get advice: %w", err)
		}

		if err := cache.Put(user, text); err != nil {
			return fmt.Errorf("failed to cache advice: %w", err)
		}

		color.Cyan("%s", text)
		return nil
	},
}

func init() {
	adviceCmd.Flags().BoolVar(&adviceRefresh, "refresh", false, "bypass today's cached advice")
	rootCmd.AddCommand(adviceCmd)
}
