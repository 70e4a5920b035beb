// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/getgodel/internal/core"
	"github.com/vovakirdan/getgodel/internal/registry"
)

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// GameModel is the Bubble Tea model for one running game.
// The game advances only on key presses.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	state      core.GameState
	standalone bool // Back ends the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game and starts a new round.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())

	m.game.Reset(m.gameConfig())
	m.state = m.game.State()
	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height), nil
	}
	return m, nil
}

// handleKey processes keyboard input. Each key press is one step.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH), nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if m.state.GameOver {
			m.restart()
		}
		return m, nil
	}

	res := m.game.Step(core.FrameOf(action))
	m.state = res.State
	return m, nil
}

// restart starts a new round with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.state = m.game.State()
}

// handleResize processes window resize events.
// Games that implement Resizer keep their state, others restart.
func (m GameModel) handleResize(width, height int) GameModel {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width
	m.screen.Resize(width, m.screenHeight())

	if r, ok := m.game.(Resizer); ok {
		r.Resize(width, m.screenHeight())
	} else {
		m.game.Reset(m.gameConfig())
	}
	m.state = m.game.State()
	return m
}

// screenHeight is the terminal height left for the game after the help footer.
func (m GameModel) screenHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	return max(m.config.ScreenH-footer, 0)
}

// gameConfig returns the runtime config as seen by the game.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screenHeight()
	return cfg
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameResult holds the result of running a standalone game.
type GameResult struct {
	State core.GameState
	Quit  bool // User asked to exit rather than go back
}

// Run starts a standalone Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig) (GameResult, error) {
	model := NewGameModel(game, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Quit: true}, nil
	}
	return gameResult(m), nil
}

// gameResult reports how a finished standalone model ended.
func gameResult(m GameModel) GameResult {
	return GameResult{
		State: m.State(),
		Quit:  !m.BackToMenu(),
	}
}
