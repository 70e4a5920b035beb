package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is created smaller than MinSide.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")

	// ErrOutOfBounds is returned when a cell outside the grid is addressed.
	ErrOutOfBounds = errors.New("board: position out of bounds")
)
