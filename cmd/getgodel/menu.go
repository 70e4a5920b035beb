package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/getgodel/internal/platform/tui"
	"github.com/vovakirdan/getgodel/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or W/S to navigate, Enter to select a board.
Esc/B leaves a game and returns to the menu; Q exits.

Controls:
  Up/Down/W/S  - Navigate menu
  Enter/Space  - Select board
  Q/Esc        - Quit

Examples:
  getgodel menu
  getgodel menu --config ./boards.yaml`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, cfg)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
	}
}
