package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/getgodel/internal/config"
	"github.com/vovakirdan/getgodel/internal/core"
	"github.com/vovakirdan/getgodel/internal/games/godel"
	"github.com/vovakirdan/getgodel/internal/platform/tui"
)

var (
	flagHeight int
	flagWidth  int
	flagTarget int
	flagTheme  string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: the first configured one).

Controls:
  W/A/S/D, arrows  - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave the game
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  getgodel play
  getgodel play classic
  getgodel play godel --height 5 --width 5
  getgodel play mini --target 512 --theme numbers
  getgodel play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board rows (overrides the variant)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board columns (overrides the variant)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile (overrides the variant)")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Tile theme: logicians, numbers")
}

func runPlay(_ *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}

	settings, err := playSettings(appConfig, id, config.Variant{
		Height: flagHeight,
		Width:  flagWidth,
		Target: flagTarget,
		Theme:  config.Theme(flagTheme),
	})
	if err != nil {
		return err
	}

	logger.Debug("starting game",
		"variant", settings.ID,
		"size", fmt.Sprintf("%dx%d", settings.Height, settings.Width),
		"target", settings.Target,
	)

	res, err := tui.Run(godel.New(settings), runtimeConfig())
	if err != nil {
		return err
	}
	logger.Debug("game ended", "moves", res.State.Moves, "max", res.State.MaxTile, "won", res.State.Won)
	return nil
}

// playSettings resolves variant id with the non-zero fields of overrides applied.
// An empty id selects the first configured variant.
func playSettings(cfg config.Config, id string, overrides config.Variant) (config.GameSettings, error) {
	if id == "" && len(cfg.Variants) > 0 {
		id = cfg.Variants[0].ID
	}

	v, ok := cfg.Variant(id)
	if !ok {
		return config.GameSettings{}, fmt.Errorf("unknown board %q, run 'getgodel list' to see available boards", id)
	}

	if overrides.Height != 0 {
		v.Height = overrides.Height
	}
	if overrides.Width != 0 {
		v.Width = overrides.Width
	}
	if overrides.Target != 0 {
		v.Target = overrides.Target
	}
	if overrides.Theme != "" {
		v.Theme = overrides.Theme
	}

	s, err := cfg.Resolve(v)
	if err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("board %q: %w", id, err)
	}
	return s, nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
