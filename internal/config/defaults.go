package config

import (
	_ "embed"
)

//go:embed defaults/getgodel.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no file is found and
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Height:       4,
			Width:        4,
			Target:       2048,
			InitialTiles: 2,
			LossRule:     "spawn_failed",
		},
		Theme: ThemeLogicians,
		Variants: []Variant{
			{ID: "godel", Title: "Get Godel"},
			{ID: "classic", Title: "Classic 2048", Theme: ThemeNumbers},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
