// Package config provides YAML-based configuration for the board and the
// playable variants.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/getgodel/internal/board"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Theme names how tiles are labelled.
type Theme string

const (
	ThemeLogicians Theme = "logicians"
	ThemeNumbers   Theme = "numbers"
)

// Config is the top-level configuration file.
type Config struct {
	Board    BoardConfig `yaml:"board"`
	Theme    Theme       `yaml:"theme"`
	Variants []Variant   `yaml:"variants"`
}

// BoardConfig holds defaults shared by every variant.
type BoardConfig struct {
	Height       int    `yaml:"height"`
	Width        int    `yaml:"width"`
	Target       int    `yaml:"target"`
	InitialTiles int    `yaml:"initial_tiles"`
	LossRule     string `yaml:"loss_rule"`
}

// Variant is a named, playable board setup. Zero fields inherit from Config.
type Variant struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Height int    `yaml:"height,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Target int    `yaml:"target,omitempty"`
	Theme  Theme  `yaml:"theme,omitempty"`
}

// GameSettings is a fully resolved variant ready to start a game.
type GameSettings struct {
	ID           string
	Title        string
	Height       int
	Width        int
	Target       int
	InitialTiles int
	LossRule     board.LossRule
	Theme        Theme
}

// Resolve fills unset variant fields from the config defaults.
func (c Config) Resolve(v Variant) (GameSettings, error) {
	rule, err := board.ParseLossRule(c.Board.LossRule)
	if err != nil {
		return GameSettings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	s := GameSettings{
		ID:           v.ID,
		Title:        v.Title,
		Height:       v.Height,
		Width:        v.Width,
		Target:       v.Target,
		InitialTiles: c.Board.InitialTiles,
		LossRule:     rule,
		Theme:        v.Theme,
	}
	if s.Height == 0 {
		s.Height = c.Board.Height
	}
	if s.Width == 0 {
		s.Width = c.Board.Width
	}
	if s.Target == 0 {
		s.Target = c.Board.Target
	}
	if s.Theme == "" {
		s.Theme = c.Theme
	}
	if s.Title == "" {
		s.Title = s.ID
	}
	return s, nil
}

// Variant returns the variant with the given id.
func (c Config) Variant(id string) (Variant, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Settings resolves every variant in file order.
func (c Config) Settings() ([]GameSettings, error) {
	out := make([]GameSettings, 0, len(c.Variants))
	for _, v := range c.Variants {
		s, err := c.Resolve(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Validate checks the config and every resolved variant.
func (c Config) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants defined", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if v.ID == "" {
			return fmt.Errorf("%w: variant without id", ErrInvalid)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalid, v.ID)
		}
		seen[v.ID] = true

		s, err := c.Resolve(v)
		if err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("variant %q: %w", v.ID, err)
		}
	}
	return nil
}

// Validate checks a resolved variant.
func (s GameSettings) Validate() error {
	if s.Height < board.MinSide || s.Width < board.MinSide {
		return fmt.Errorf("%w: board %dx%d smaller than %dx%d", ErrInvalid, s.Height, s.Width, board.MinSide, board.MinSide)
	}
	if !isPowerOfTwo(s.Target) || s.Target < 4 {
		return fmt.Errorf("%w: target %d must be a power of two >= 4", ErrInvalid, s.Target)
	}
	if s.InitialTiles < 0 || s.InitialTiles > s.Height*s.Width {
		return fmt.Errorf("%w: initial_tiles %d outside [0, %d]", ErrInvalid, s.InitialTiles, s.Height*s.Width)
	}
	switch s.Theme {
	case ThemeLogicians, ThemeNumbers:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, s.Theme)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
