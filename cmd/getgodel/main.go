// getgodel is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	getgodel list              - List configured boards
//	getgodel play [variant]    - Play a board
//	getgodel menu              - Pick boards interactively
//	getgodel serve             - Start SSH server for remote play
//	getgodel simulate          - Run headless games with random moves
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.getgodel/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/getgodel/internal/config"
	"github.com/vovakirdan/getgodel/internal/games/godel"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	appConfig config.Config
	logger    = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "getgodel",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "getgodel",
	Short: "Get Godel - slide and merge tiles in your terminal",
	Long: `Get Godel is a sliding-tile merge puzzle. Every move slides all tiles
to one side; two equal tiles that meet merge into their sum. Reach the
target tile to win.

Available commands:
  list      - Show configured boards
  play      - Play a board directly
  menu      - Interactive board picker
  serve     - Start SSH server for remote play
  simulate  - Run headless games with random moves

Examples:
  getgodel play
  getgodel play classic --width 5
  getgodel menu
  getgodel serve --ssh :2222
  getgodel simulate --games 100`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup configures logging, loads the config and registers every variant.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	appConfig, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	settings, err := appConfig.Settings()
	if err != nil {
		return err
	}
	if err := godel.RegisterVariants(settings); err != nil {
		return err
	}

	logger.Debug("config loaded", "variants", len(settings), "theme", appConfig.Theme)
	return nil
}
