package board

import (
	"fmt"
	"iter"
)

// Empty marks a cell that holds no tile.
const Empty = 0

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Grid is a height x width matrix of tiles stored row-major.
type Grid struct {
	height int
	width  int
	cells  []int
}

func newGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]int, height*width),
	}
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) checkBounds(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.height, g.width)
	}
	return nil
}

func (g *Grid) get(row, col int) int {
	return g.cells[row*g.width+col]
}

func (g *Grid) set(row, col, value int) {
	g.cells[row*g.width+col] = value
}

// row returns the backing slice of a row. Writes go to the grid.
func (g *Grid) row(r int) []int {
	return g.cells[r*g.width : (r+1)*g.width]
}

// At returns the value at (row, col), or Empty.
func (g *Grid) At(row, col int) (int, error) {
	if err := g.checkBounds(row, col); err != nil {
		return Empty, err
	}
	return g.get(row, col), nil
}

// InsertTile places value at (row, col).
func (g *Grid) InsertTile(value, row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	g.set(row, col, value)
	return nil
}

// EmptyCells yields every empty position in row-major order.
// The sequence reads the grid as it iterates.
func (g *Grid) EmptyCells() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for r := range g.height {
			for c := range g.width {
				if g.get(r, c) != Empty {
					continue
				}
				if !yield(Pos{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := newGrid(g.height, g.width)
	copy(out.cells, g.cells)
	return out
}

// Rows returns a row-major copy of the cells.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for r := range g.height {
		rows[r] = make([]int, g.width)
		copy(rows[r], g.row(r))
	}
	return rows
}

// MaxTile returns the largest tile value, or Empty on an empty grid.
func (g *Grid) MaxTile() int {
	best := Empty
	for _, v := range g.cells {
		if v > best {
			best = v
		}
	}
	return best
}

// Sum returns the total of all tile values.
func (g *Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for _, v := range g.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// contains reports whether any cell holds value.
func (g *Grid) contains(value int) bool {
	for _, v := range g.cells {
		if v == value {
			return true
		}
	}
	return false
}

// hasAdjacentPair reports whether two orthogonal neighbours hold equal tiles.
func (g *Grid) hasAdjacentPair() bool {
	for r := range g.height {
		for c := range g.width {
			v := g.get(r, c)
			if v == Empty {
				continue
			}
			if c < g.width-1 && g.get(r, c+1) == v {
				return true
			}
			if r < g.height-1 && g.get(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

// rotateClockwise returns a new grid turned a quarter turn clockwise.
// The result has height and width swapped: out[i][j] = in[h-1-j][i].
func (g *Grid) rotateClockwise() *Grid {
	out := newGrid(g.width, g.height)
	for i := range out.height {
		for j := range out.width {
			out.set(i, j, g.get(g.height-1-j, i))
		}
	}
	return out
}

// rotate applies n clockwise quarter turns.
func (g *Grid) rotate(n int) *Grid {
	out := g
	for range n % 4 {
		out = out.rotateClockwise()
	}
	if out == g {
		out = g.Clone()
	}
	return out
}
