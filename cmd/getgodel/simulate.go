package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/getgodel/internal/board"
	"github.com/vovakirdan/getgodel/internal/config"
	"github.com/vovakirdan/getgodel/internal/core"
	"github.com/vovakirdan/getgodel/internal/games/godel"
)

var (
	flagGames    int
	flagMaxMoves int
	flagVariant  string
	flagDirs     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless games with random moves",
	Long: `Play games without a terminal UI, choosing a random direction every turn.
Each game's outcome is logged at debug level, followed by a summary.

Examples:
  getgodel simulate
  getgodel simulate --games 1000 --variant mini
  getgodel simulate --seed 42 --log-level debug
  getgodel simulate --dirs left,down`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 10000, "Turn limit per game")
	simulateCmd.Flags().StringVar(&flagVariant, "variant", "", "Board variant (default: the first configured one)")
	simulateCmd.Flags().StringVar(&flagDirs, "dirs", "left,down,right,up", "Comma-separated directions to choose from")
}

// directionActions maps board directions to the actions that trigger them.
var directionActions = map[board.Direction]core.Action{
	board.Left:  core.ActionLeft,
	board.Down:  core.ActionDown,
	board.Right: core.ActionRight,
	board.Up:    core.ActionUp,
}

// parseDirs turns a comma-separated list of direction names into actions.
func parseDirs(s string) ([]core.Action, error) {
	var actions []core.Action
	for name := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		d, err := board.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, directionActions[d])
	}
	if len(actions) == 0 {
		return nil, errors.New("--dirs needs at least one direction")
	}
	return actions, nil
}

// simOutcome classifies how a simulated game ended.
type simOutcome string

const (
	outcomeWon   simOutcome = "won"
	outcomeLost  simOutcome = "lost"
	outcomeStuck simOutcome = "stuck"   // no direction changes the board
	outcomeLimit simOutcome = "limited" // turn limit reached
)

type simResult struct {
	Outcome simOutcome
	Moves   int
	MaxTile int
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagGames < 1 {
		return errors.New("--games must be at least 1")
	}

	dirs, err := parseDirs(flagDirs)
	if err != nil {
		return err
	}

	settings, err := playSettings(appConfig, flagVariant, config.Variant{})
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	counts := make(map[simOutcome]int)
	totalMoves, best := 0, 0
	for i := range flagGames {
		res, err := simulate(settings, seed+int64(i), flagMaxMoves, dirs)
		if err != nil {
			return err
		}
		logger.Debug("game finished",
			"game", i+1,
			"outcome", res.Outcome,
			"moves", res.Moves,
			"max", res.MaxTile,
		)

		counts[res.Outcome]++
		totalMoves += res.Moves
		best = max(best, res.MaxTile)
	}

	logger.Info("simulation complete",
		"variant", settings.ID,
		"games", flagGames,
		"won", counts[outcomeWon],
		"lost", counts[outcomeLost],
		"stuck", counts[outcomeStuck],
		"limited", counts[outcomeLimit],
		"avg_moves", float64(totalMoves)/float64(flagGames),
		"best", best,
	)
	return nil
}

// dirSeedMix decorrelates the direction stream from the game's spawn stream.
const dirSeedMix = 0x9e3779b9

// simulate plays one game, choosing uniformly among dirs every turn.
func simulate(settings config.GameSettings, seed int64, maxTurns int, dirs []core.Action) (simResult, error) {
	g := godel.New(settings)
	g.Reset(core.RuntimeConfig{ScreenW: math.MaxInt16, ScreenH: math.MaxInt16, Seed: seed})
	if err := g.Err(); err != nil {
		return simResult{}, err
	}

	rng := rand.New(rand.NewSource(seed ^ dirSeedMix))

	for range maxTurns {
		if g.State().GameOver {
			break
		}
		g.Step(core.FrameOf(dirs[rng.Intn(len(dirs))]))
	}

	state := g.State()
	outcome := outcomeLimit
	switch {
	case state.Won:
		outcome = outcomeWon
	case state.Lost:
		outcome = outcomeLost
	case state.Stuck:
		outcome = outcomeStuck
	}
	return simResult{Outcome: outcome, Moves: state.Moves, MaxTile: state.MaxTile}, nil
}
