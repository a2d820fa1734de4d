// ABOUTME: CLI command for viewing and updating configuration.
// ABOUTME: Supports get/set of backend, prices, and advice settings.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/jdufour/taper/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [get|set] [key] [value]",
	Short: "View or update configuration",
	Long: `View or update taper configuration.

KEYS:

  backend               storage backend: sqlite (default) or charm
  data_dir              data directory (default ~/.local/share/taper)
  price_per_gram_herbe  default price per gram of herbe (default 10)
  price_per_gram_hash   default price per gram of hash (default 15)
  price_per_cigarette   default price per cigarette (default 0.50)
  auto_cigarette        cigarettes auto-logged with herbe/hash (0 disables)
  advice_url            endpoint for AI advice requests
  advice_api_key        API key for the advice endpoint
                        (TAPER_ADVICE_API_KEY env var takes precedence)

EXAMPLES:

  taper config                                  # Show all settings
  taper config get price_per_gram_herbe
  taper config set price_per_gram_herbe 11.5
  taper config set auto_cigarette 1`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if len(args) == 0 {
			printConfig(c)
			return nil
		}

		switch args[0] {
		case "get":
			if len(args) != 2 {
				return fmt.Errorf("usage: taper config get <key>")
			}
			value, err := getConfigValue(c, args[1])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		case "set":
			if len(args) != 3 {
				return fmt.Errorf("usage: taper config set <key> <value>")
			}
			if err := setConfigValue(c, args[1], args[2]); err != nil {
				return err
			}
			if err := c.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Green("✓ Set %s", args[1])
			return nil
		default:
			return fmt.Errorf("unknown subcommand: %s (use get or set)", args[0])
		}
	},
}

func printConfig(c *config.Config) {
	p := c.PriceDefaults()
	fmt.Printf("backend               %s\n", c.GetBackend())
	fmt.Printf("data_dir              %s\n", c.GetDataDir())
	fmt.Printf("price_per_gram_herbe  %.2f\n", p.PerGramHerb)
	fmt.Printf("price_per_gram_hash   %.2f\n", p.PerGramHash)
	fmt.Printf("price_per_cigarette   %.2f\n", p.PerCigarette)
	fmt.Printf("auto_cigarette        %.2f\n", c.AutoCigarette)
	fmt.Printf("advice_url            %s\n", c.AdviceURL)
	key := c.GetAdviceAPIKey()
	if key != "" {
		key = "(set)"
	}
	fmt.Printf("advice_api_key        %s\n", key)
}

func getConfigValue(c *config.Config, key string) (string, error) {
	switch key {
	case "backend":
		return c.GetBackend(), nil
	case "data_dir":
		return c.GetDataDir(), nil
	case "price_per_gram_herbe":
		return fmt.Sprintf("%.2f", c.PriceDefaults().PerGramHerb), nil
	case "price_per_gram_hash":
		return fmt.Sprintf("%.2f", c.PriceDefaults().PerGramHash), nil
	case "price_per_cigarette":
		return fmt.Sprintf("%.2f", c.PriceDefaults().PerCigarette), nil
	case "auto_cigarette":
		return fmt.Sprintf("%.2f", c.AutoCigarette), nil
	case "advice_url":
		return c.AdviceURL, nil
	case "advice_api_key":
		return c.GetAdviceAPIKey(), nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

func setConfigValue(c *config.Config, key, value string) error {
	parseFloat := func() (float64, error) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid value for %s: %s", key, value)
		}
		return f, nil
	}

	switch key {
	case "backend":
		if value != "sqlite" && value != "charm" {
			return fmt.Errorf("invalid backend: %s (use sqlite or charm)", value)
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "price_per_gram_herbe":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		c.PricePerGramHerb = f
	case "price_per_gram_hash":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		c.PricePerGramHash = f
	case "price_per_cigarette":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		c.PricePerCigarette = f
	case "auto_cigarette":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		c.AutoCigarette = f
	case "advice_url":
		c.AdviceURL = value
	case "advice_api_key":
		c.AdviceAPIKey = value
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
