package model

// AddGlider stamps a glider onto the grid with its bounding box anchored at
// (startX, startY). Cells falling outside the grid are skipped, so placement
// near an edge clips rather than fails.
func AddGlider(g *Grid, startX, startY int) {
	pattern := [][]CellState{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if g.contains(startX+x, startY+y) {
				_ = g.Set(startX+x, startY+y, cell)
			}
		}
	}
}

// AddBlinker stamps a horizontal blinker (period-2 oscillator) starting at
// (startX, startY), clipping at the grid edge like AddGlider.
func AddBlinker(g *Grid, startX, startY int) {
	for x := startX; x < startX+3; x++ {
		if g.contains(x, startY) {
			_ = g.Set(x, startY, Alive)
		}
	}
}
