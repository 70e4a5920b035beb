package board

// mergeRowLeft slides and merges a single row towards index 0 in place.
// A tile merges at most once per pass, so 2,2,2,2 becomes 4,4,_,_.
// Returns the number of merges performed.
func mergeRowLeft(row []int) int {
	merges := 0
	last := -1

	for i, v := range row {
		if v == Empty {
			continue
		}
		if last >= 0 && row[last] == v {
			row[last] = 2 * v
			row[i] = Empty
			last = -1
			merges++
			continue
		}
		last = i
	}

	// Compact: close gaps from merges and from before the shift.
	n := 0
	for _, v := range row {
		if v != Empty {
			row[n] = v
			n++
		}
	}
	for ; n < len(row); n++ {
		row[n] = Empty
	}

	return merges
}

// shifted returns the grid after sliding every tile in dir, plus the merge count.
// The receiver is not modified.
func (g *Grid) shifted(dir Direction) (*Grid, int) {
	turns := dir.rotations()
	work := g.rotate(turns)

	merges := 0
	for r := range work.height {
		merges += mergeRowLeft(work.row(r))
	}

	return work.rotate((4 - turns) % 4), merges
}
