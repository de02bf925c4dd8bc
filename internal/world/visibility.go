package world

// MaxRevealRadius caps the reveal radius. Any larger radius already
// uncovers the whole grid.
const MaxRevealRadius = Rows + Cols

// neighborOffsets are the 8 king-move steps used by the reveal flood.
var neighborOffsets = [8]Point{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, 1}, {1, 1}, {-1, -1}, {1, -1},
}

// Reveal marks every cell reachable from origin within radius 8-way
// steps as visible. Walls do not block sight. Visibility only ever goes
// from false to true, so calling Reveal again is harmless.
func (r *Room) Reveal(origin Point, radius int) {
	if radius > MaxRevealRadius {
		radius = MaxRevealRadius
	}
	// reached[row][col] holds 1 + the smallest step count any branch
	// arrived with; zero means not reached during this call.
	var reached [Rows][Cols]int
	r.reveal(origin, 0, radius, &reached)
}

func (r *Room) reveal(p Point, step, radius int, reached *[Rows][Cols]int) {
	if !InBounds(p) || step > radius {
		return
	}
	if seen := reached[p.Row][p.Col]; seen != 0 && seen-1 <= step {
		// An earlier branch got here with at least as much budget left.
		return
	}
	reached[p.Row][p.Col] = step + 1
	r.grid[p.Row][p.Col].Visible = true
	for _, off := range neighborOffsets {
		r.reveal(p.Add(off.Row, off.Col), step+1, radius, reached)
	}
}
