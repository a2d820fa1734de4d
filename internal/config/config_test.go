// ABOUTME: Tests for taper configuration management.
// ABOUTME: Covers load, save, defaults, prices, backend selection, path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdufour/taper/internal/models"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "charm"}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/taper-test"}
	if got := cfg.GetDataDir(); got != "/tmp/taper-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/taper-test")
	}
}

func TestPriceDefaultsFallbacks(t *testing.T) {
	cfg := &Config{}
	p := cfg.PriceDefaults()

	want := models.PriceDefaults{PerGramHerb: 10.0, PerGramHash: 15.0, PerCigarette: 0.5}
	if p != want {
		t.Errorf("PriceDefaults() = %+v, want %+v", p, want)
	}
}

func TestPriceDefaultsConfigured(t *testing.T) {
	cfg := &Config{PricePerGramHerb: 9, PricePerCigarette: 0.65}
	p := cfg.PriceDefaults()

	if p.PerGramHerb != 9 {
		t.Errorf("PerGramHerb = %f, want 9", p.PerGramHerb)
	}
	if p.PerGramHash != 15.0 {
		t.Errorf("PerGramHash = %f, want fallback 15.0", p.PerGramHash)
	}
	if p.PerCigarette != 0.65 {
		t.Errorf("PerCigarette = %f, want 0.65", p.PerCigarette)
	}
}

func TestGetAdviceAPIKey(t *testing.T) {
	t.Setenv("TAPER_ADVICE_API_KEY", "")

	cfg := &Config{AdviceAPIKey: "from-file"}
	if got := cfg.GetAdviceAPIKey(); got != "from-file" {
		t.Errorf("GetAdviceAPIKey() = %q, want config value", got)
	}

	// Environment wins over the config file
	t.Setenv("TAPER_ADVICE_API_KEY", "from-env")
	if got := cfg.GetAdviceAPIKey(); got != "from-env" {
		t.Errorf("GetAdviceAPIKey() = %q, want env override", got)
	}

	empty := &Config{}
	t.Setenv("TAPER_ADVICE_API_KEY", "")
	if got := empty.GetAdviceAPIKey(); got != "" {
		t.Errorf("GetAdviceAPIKey() = %q, want empty", got)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/taper")
	want := filepath.Join(home, "data/taper")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/taper\") = %q, want %q", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "sqlite" {
		t.Errorf("expected default backend, got %q", cfg.GetBackend())
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Backend:          "sqlite",
		PricePerGramHerb: 11.5,
		AutoCigarette:    1,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.PricePerGramHerb != 11.5 {
		t.Errorf("PricePerGramHerb = %f, want 11.5", loaded.PricePerGramHerb)
	}
	if loaded.AutoCigarette != 1 {
		t.Errorf("AutoCigarette = %f, want 1", loaded.AutoCigarette)
	}

	// File is valid JSON
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("config file is not valid JSON: %v", err)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "papyrus"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected unknown backend error")
	}
}
