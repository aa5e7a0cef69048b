package rules

/*
Alive reports whether a cell is alive in the next generation under
Conway's rules, given its current state and live-neighbor count:

  - a live cell with 2 or 3 live neighbors survives
  - a dead cell with exactly 3 live neighbors is born
  - every other cell is dead

Equivalent to: (alive && neighbors == 2) || neighbors == 3
*/
func Alive(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
