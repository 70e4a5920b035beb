package godel

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/getgodel/internal/board"
	"github.com/vovakirdan/getgodel/internal/config"
	"github.com/vovakirdan/getgodel/internal/core"
	"github.com/vovakirdan/getgodel/internal/registry"
)

// Game is one playable variant.
type Game struct {
	settings config.GameSettings
	rng      *rand.Rand
	board    *board.Board
	err      error

	moves     int
	lastSpawn *board.Pos

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for the given resolved variant.
func New(settings config.GameSettings) *Game {
	return &Game{settings: settings}
}

// RegisterVariants registers one game factory per variant.
func RegisterVariants(settings []config.GameSettings) error {
	for _, s := range settings {
		if err := registry.Register(s.ID, func() registry.Game {
			return New(s)
		}); err != nil {
			return err
		}
	}
	return nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.settings.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.settings.Title
}

// Settings returns the resolved variant.
func (g *Game) Settings() config.GameSettings {
	return g.settings
}

// Board returns the underlying board engine.
func (g *Game) Board() *board.Board {
	return g.board
}

// Err returns the error that prevented the last Reset from creating a board.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a new game and places the initial tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moves = 0
	g.lastSpawn = nil
	g.paused = false

	g.board, g.err = board.NewGame(
		g.settings.Height,
		g.settings.Width,
		board.WithTarget(g.settings.Target),
		board.WithLossRule(g.settings.LossRule),
		board.WithSource(g.rng),
	)
	if g.err != nil {
		g.err = fmt.Errorf("variant %q: %w", g.settings.ID, g.err)
		return
	}

	for range g.settings.InitialTiles {
		g.board.SpawnRandomTile()
	}

	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.board == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res := g.board.Move(dir)
	if res.Changed {
		g.moves++
		g.lastSpawn = res.Spawned
	}

	return core.StepResult{State: g.State(), Changed: res.Changed}
}

// directionFor maps the first direction action in the frame to a board direction.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return board.Left, false
}

// stuck reports a running board on which no direction changes anything.
func (g *Game) stuck() bool {
	return !g.board.IsOver() && !g.board.CanMove()
}

// over reports whether the round has ended.
func (g *Game) over() bool {
	return g.board.IsOver() || g.stuck()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		MaxTile:  g.board.MaxTile(),
		Moves:    g.moves,
		Won:      g.board.IsWon(),
		Lost:     g.board.IsLost(),
		Stuck:    g.stuck(),
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
	}
}
