package board

import (
	"fmt"
	"strings"
)

// Direction is the axis and sense along which tiles slide.
// The value of each direction is the number of clockwise quarter turns that
// map it onto Left.
type Direction int

const (
	Left Direction = iota
	Down
	Right
	Up
)

// Directions lists every direction in rotation order.
var Directions = [...]Direction{Left, Down, Right, Up}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// rotations returns the clockwise quarter turns that normalise d to Left.
func (d Direction) rotations() int {
	switch d {
	case Left:
		return 0
	case Down:
		return 1
	case Right:
		return 2
	case Up:
		return 3
	}
	panic(fmt.Sprintf("board: unknown direction %d", int(d)))
}

// ParseDirection converts a direction name (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "down", "d":
		return Down, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	}
	return Left, fmt.Errorf("board: unknown direction %q", s)
}
