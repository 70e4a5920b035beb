package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/getgodel/internal/board"
)

func TestEmbeddedDefaultIsValid(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default is invalid: %v", err)
	}

	if len(cfg.Variants) != 4 {
		t.Errorf("variants = %d, want 4", len(cfg.Variants))
	}
	if cfg.Theme != ThemeLogicians {
		t.Errorf("Theme = %q, want logicians", cfg.Theme)
	}
}

func TestHardcodedDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if _, ok := cfg.Variant("wide"); !ok {
		t.Error("embedded config should define the wide variant")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".getgodel")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("theme: numbers\nvariants:\n  - id: tiny\n    height: 2\n    width: 2\n    target: 32\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(cfg.Variants) != 1 || cfg.Variants[0].ID != "tiny" {
		t.Errorf("Variants = %+v, want only tiny", cfg.Variants)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
board:
  height: 5
  width: 3
  target: 1024
  loss_rule: no_moves
variants:
  - id: tall
    title: Tall
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	v, ok := cfg.Variant("tall")
	if !ok {
		t.Fatal("variant tall not found")
	}
	s, err := cfg.Resolve(v)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	if s.Height != 5 || s.Width != 3 || s.Target != 1024 {
		t.Errorf("settings = %dx%d target %d, want 5x3 target 1024", s.Height, s.Width, s.Target)
	}
	if s.LossRule != board.LossNoMoves {
		t.Errorf("LossRule = %v, want no_moves", s.LossRule)
	}
	// Omitted fields keep the defaults
	if s.InitialTiles != 2 {
		t.Errorf("InitialTiles = %d, want 2", s.InitialTiles)
	}
	if s.Theme != ThemeLogicians {
		t.Errorf("Theme = %q, want logicians", s.Theme)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("board: [unterminated"), 0o600)
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too small", func(c *Config) { c.Board.Height = 1 }},
		{"target not power of two", func(c *Config) { c.Board.Target = 1000 }},
		{"target too low", func(c *Config) { c.Board.Target = 2 }},
		{"too many initial tiles", func(c *Config) { c.Board.InitialTiles = 17 }},
		{"negative initial tiles", func(c *Config) { c.Board.InitialTiles = -1 }},
		{"unknown loss rule", func(c *Config) { c.Board.LossRule = "never" }},
		{"unknown theme", func(c *Config) { c.Theme = "portraits" }},
		{"duplicate id", func(c *Config) { c.Variants = append(c.Variants, c.Variants[0]) }},
		{"missing id", func(c *Config) { c.Variants[0].ID = "" }},
		{"no variants", func(c *Config) { c.Variants = nil }},
		{"bad variant override", func(c *Config) { c.Variants[1].Width = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSettingsOrder(t *testing.T) {
	cfg, _ := Parse(DefaultYAML())
	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}

	ids := []string{"godel", "classic", "mini", "wide"}
	for i, id := range ids {
		if settings[i].ID != id {
			t.Errorf("settings[%d].ID = %q, want %q", i, settings[i].ID, id)
		}
	}
	if settings[2].Target != 256 || settings[2].Height != 3 {
		t.Errorf("mini = %+v", settings[2])
	}
}
