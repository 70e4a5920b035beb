package godel

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StateStuck       GameStateType = "stuck"
	StatePausedSmall GameStateType = "paused_small_window"
	StateBroken      GameStateType = "broken"
)

// Snapshot captures the complete game state for determinism tests and
// headless runs.
type Snapshot struct {
	Variant string
	Height  int
	Width   int
	Target  int
	Moves   int
	Cells   [][]int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Variant: g.settings.ID,
		Height:  g.settings.Height,
		Width:   g.settings.Width,
		Target:  g.settings.Target,
		Moves:   g.moves,
		State:   StatePlaying,
	}
	if g.board == nil {
		snap.State = StateBroken
		return snap
	}

	snap.Cells = g.board.Cells()
	snap.MaxTile = g.board.MaxTile()

	switch {
	case g.board.IsWon():
		snap.State = StateWon
	case g.board.IsLost():
		snap.State = StateLost
	case g.stuck():
		snap.State = StateStuck
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	}
	return snap
}
