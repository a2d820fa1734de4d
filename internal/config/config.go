// ABOUTME: Taper configuration management with backend selection.
// ABOUTME: Holds storage choice, default unit prices, and advice settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdufour/taper/internal/charm"
	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/storage"
)

// Config stores taper configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// taper.db and the advice cache here. Supports ~ expansion.
	// Defaults to ~/.local/share/taper.
	DataDir string `json:"data_dir,omitempty"`

	// Default unit prices. Zero values fall back to the product
	// defaults (10/g herbe, 15/g hash, 0.50/cigarette).
	PricePerGramHerb  float64 `json:"price_per_gram_herbe,omitempty"`
	PricePerGramHash  float64 `json:"price_per_gram_hash,omitempty"`
	PricePerCigarette float64 `json:"price_per_cigarette,omitempty"`

	// AutoCigarette, when > 0, logs that many cigarettes alongside
	// every herbe/hash event (companion events). 0 disables.
	AutoCigarette float64 `json:"auto_cigarette,omitempty"`

	// AdviceURL is the endpoint for AI advice requests.
	AdviceURL string `json:"advice_url,omitempty"`

	// AdviceAPIKey authenticates advice requests. The
	// TAPER_ADVICE_API_KEY environment variable takes precedence so the
	// key can stay out of the config file.
	AdviceAPIKey string `json:"advice_api_key,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// PriceDefaults returns the configured per-category default prices.
// Fallbacks for unset values are applied by the models layer.
func (c *Config) PriceDefaults() models.PriceDefaults {
	return models.PriceDefaults{
		PerGramHerb:  c.PricePerGramHerb,
		PerGramHash:  c.PricePerGramHash,
		PerCigarette: c.PricePerCigarette,
	}.Resolve()
}

// GetAdviceAPIKey returns the advice API key, preferring the
// environment over the config file.
func (c *Config) GetAdviceAPIKey() string {
	if key := os.Getenv("TAPER_ADVICE_API_KEY"); key != "" {
		return key
	}
	return c.AdviceAPIKey
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "taper.db")
		return storage.Open(dbPath)
	case "charm":
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "taper", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
