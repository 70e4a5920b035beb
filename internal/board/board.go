// Package board implements the 2048 board engine: the grid, the directional
// shift and merge, random tile spawning and win/loss detection.
//
// The engine holds no presentation state. Callers drive it with Shift or Move
// and read Cells for display.
package board

import (
	"fmt"
	"iter"
)

// MinSide is the smallest allowed height or width.
const MinSide = 2

// DefaultTarget is the tile value that wins the game.
const DefaultTarget = 2048

// LossRule selects when a game is considered lost.
type LossRule int

const (
	// LossSpawnFailed declares a loss only when a spawn finds no empty cell.
	LossSpawnFailed LossRule = iota
	// LossNoMoves also declares a loss when no direction can change the grid.
	LossNoMoves
)

// String returns the config name of the rule.
func (r LossRule) String() string {
	switch r {
	case LossSpawnFailed:
		return "spawn_failed"
	case LossNoMoves:
		return "no_moves"
	default:
		return fmt.Sprintf("LossRule(%d)", int(r))
	}
}

// ParseLossRule converts a config name to a LossRule.
func ParseLossRule(s string) (LossRule, error) {
	switch s {
	case "", "spawn_failed":
		return LossSpawnFailed, nil
	case "no_moves":
		return LossNoMoves, nil
	}
	return LossSpawnFailed, fmt.Errorf("board: unknown loss rule %q", s)
}

// Status is the outcome of a game so far.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Board is a single game: the grid plus its terminal flags.
// A Board is not safe for concurrent use.
type Board struct {
	grid     *Grid
	target   int
	lossRule LossRule
	src      Source

	won  bool
	lost bool
}

// Option configures a Board.
type Option func(*Board)

// WithTarget sets the winning tile value.
func WithTarget(target int) Option {
	return func(b *Board) {
		b.target = target
	}
}

// WithSource sets the random source used for spawning.
func WithSource(src Source) Option {
	return func(b *Board) {
		b.src = src
	}
}

// WithLossRule sets the loss rule.
func WithLossRule(rule LossRule) Option {
	return func(b *Board) {
		b.lossRule = rule
	}
}

// NewGame creates an empty height x width board.
func NewGame(height, width int, opts ...Option) (*Board, error) {
	if height < MinSide || width < MinSide {
		return nil, fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrInvalidDimensions, height, width, MinSide, MinSide)
	}

	b := &Board{
		grid:   newGrid(height, width),
		target: DefaultTarget,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.src == nil {
		b.src = defaultSource()
	}
	return b, nil
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.grid.Height()
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.grid.Width()
}

// Target returns the winning tile value.
func (b *Board) Target() int {
	return b.target
}

// LossRule returns the active loss rule.
func (b *Board) LossRule() LossRule {
	return b.lossRule
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() *Grid {
	return b.grid.Clone()
}

// Cells returns the grid row-major; empty cells hold Empty.
func (b *Board) Cells() [][]int {
	return b.grid.Rows()
}

// At returns the tile at (row, col).
func (b *Board) At(row, col int) (int, error) {
	return b.grid.At(row, col)
}

// InsertTile sets (row, col) to value and re-evaluates the goal.
func (b *Board) InsertTile(value, row, col int) error {
	if err := b.grid.InsertTile(value, row, col); err != nil {
		return err
	}
	b.CheckGoal()
	return nil
}

// EmptyCells yields the empty positions of the current grid.
func (b *Board) EmptyCells() iter.Seq[Pos] {
	return b.grid.EmptyCells()
}

// Equal reports whether both boards hold identical grids.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.grid.Equal(other.grid)
}

// MaxTile returns the largest tile on the board.
func (b *Board) MaxTile() int {
	return b.grid.MaxTile()
}

// Shift slides and merges every tile in dir.
// Returns whether the grid changed. A finished board never changes.
func (b *Board) Shift(dir Direction) bool {
	if b.IsOver() {
		return false
	}

	next, _ := b.grid.shifted(dir)
	if next.Equal(b.grid) {
		return false
	}
	b.grid = next
	return true
}

// SpawnRandomTile places a 2 or a 4 in a random empty cell.
// A full grid marks the board lost and returns false.
func (b *Board) SpawnRandomTile() bool {
	if b.IsOver() {
		return false
	}

	if _, ok := spawn(b.grid, b.src); !ok {
		b.lost = true
		return false
	}
	return true
}

// CanMove reports whether some direction would change the grid.
func (b *Board) CanMove() bool {
	return b.grid.TileCount() < len(b.grid.cells) || b.grid.hasAdjacentPair()
}

// CheckGoal updates the terminal flags from the grid and returns the status.
func (b *Board) CheckGoal() Status {
	if b.grid.contains(b.target) {
		b.won = true
	}
	if b.lossRule == LossNoMoves && !b.CanMove() {
		b.lost = true
	}
	return b.Status()
}

// IsWon reports whether the target tile has been reached.
func (b *Board) IsWon() bool {
	return b.won
}

// IsLost reports whether the game was lost.
func (b *Board) IsLost() bool {
	return b.lost
}

// IsOver reports whether the board accepts no further moves.
func (b *Board) IsOver() bool {
	return b.won || b.lost
}

// Status returns the current outcome. A win outranks a loss.
func (b *Board) Status() Status {
	switch {
	case b.won:
		return StatusWon
	case b.lost:
		return StatusLost
	default:
		return StatusPlaying
	}
}

// MoveResult describes one complete turn.
type MoveResult struct {
	Changed bool
	Spawned *Pos // nil when no tile was placed
	Status  Status
}

// Move runs one turn: shift, spawn if the shift changed the grid, then
// evaluate the goal.
func (b *Board) Move(dir Direction) MoveResult {
	if !b.Shift(dir) {
		return MoveResult{Status: b.Status()}
	}

	res := MoveResult{Changed: true}
	if p, ok := spawn(b.grid, b.src); ok {
		res.Spawned = &p
	} else {
		b.lost = true
	}
	res.Status = b.CheckGoal()
	return res
}
