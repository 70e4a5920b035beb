package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	MaxTile  int  // Highest tile on the board
	Moves    int  // Moves that changed the board
	Won      bool // Target tile reached
	Lost     bool // No room left for a new tile
	Stuck    bool // No direction changes the board
	GameOver bool // Won, lost or stuck; further moves are ignored
	Paused   bool
}

// StepResult is returned by Game.Step after each input.
type StepResult struct {
	State   GameState
	Changed bool // The board changed this step
}
