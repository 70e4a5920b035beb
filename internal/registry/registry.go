// Package registry keeps the playable game variants. Variants are registered
// at startup from configuration, so the platform can list and create them
// without knowing how they are built.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/getgodel/internal/core"
)

// Game is the interface the terminal platform drives.
// Implementations contain game logic only; the platform handles input
// mapping and terminal output.
type Game interface {
	// ID returns the variant identifier used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. The RuntimeConfig provides screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input frame and returns the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	order   []string
)

type entry struct {
	title   string
	factory Factory
}

// Register adds a game factory under id.
// Returns an error if the id is already registered.
func Register(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		return fmt.Errorf("registry: game %q already registered", id)
	}

	entries[id] = entry{title: f().Title(), factory: f}
	order = append(order, id)
	return nil
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, GameInfo{ID: id, Title: entries[id].title})
	}
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Reset removes every registration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	entries = make(map[string]entry)
	order = nil
}
