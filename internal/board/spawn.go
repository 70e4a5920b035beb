package board

import (
	"math/rand"
	"time"
)

// Source supplies the randomness used for spawning.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// SpawnValues are the tile values a spawn can produce, chosen uniformly.
var SpawnValues = [...]int{2, 4}

func defaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// spawn places one tile in a uniformly chosen empty cell of g.
// Returns the position and false if g has no empty cell.
func spawn(g *Grid, src Source) (Pos, bool) {
	value := SpawnValues[src.Intn(len(SpawnValues))]

	var empty []Pos
	for p := range g.EmptyCells() {
		empty = append(empty, p)
	}
	if len(empty) == 0 {
		return Pos{}, false
	}

	p := empty[src.Intn(len(empty))]
	g.set(p.Row, p.Col, value)
	return p, true
}
