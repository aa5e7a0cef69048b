package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"gridlife/rules"
)

// CellState models whether a single grid position is alive or dead.
type CellState uint8

const (
	// Dead is the zero value, so a freshly allocated grid is all dead.
	Dead CellState = iota
	Alive
)

// String returns "Dead" or "Alive".
func (s CellState) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

// neighborOffsets are the 8 positions surrounding a cell, diagonals included.
var neighborOffsets = [8][2]int{
	{0, -1},  // north
	{1, -1},  // north-east
	{1, 0},   // east
	{1, 1},   // south-east
	{0, 1},   // south
	{-1, 1},  // south-west
	{-1, 0},  // west
	{-1, -1}, // north-west
}

// Grid holds one generation of cell states. Dimensions are fixed at
// construction; advancing the simulation produces a new Grid rather than
// mutating this one, so a held Grid value never changes underneath its owner.
type Grid struct {
	width      int
	height     int
	cells      []CellState // row-major, index y*width+x
	population int
}

// NewEmpty creates a grid of the given dimensions with every cell Dead.
func NewEmpty(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, errors.Errorf("[NewEmpty] invalid dimensions %dx%d: width and height must be positive", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// NewRandom creates a grid where each cell is independently Alive with
// probability aliveProb, clamped to [0,1]. The randomness source is supplied
// by the caller so results are reproducible under a fixed seed.
func NewRandom(width, height int, aliveProb float64, rng *rand.Rand) (*Grid, error) {
	g, err := NewEmpty(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.Errorf("[NewRandom] nil randomness source")
	}

	aliveProb = min(max(aliveProb, 0), 1)
	for i := range g.cells {
		if rng.Float64() < aliveProb {
			g.cells[i] = Alive
			g.population++
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Population returns the number of Alive cells.
func (g *Grid) Population() int {
	return g.population
}

// At returns the state of the cell at (x, y). Out-of-bounds coordinates are
// an error, never clamped or wrapped.
func (g *Grid) At(x, y int) (CellState, error) {
	if !g.contains(x, y) {
		return Dead, errors.Errorf("[At] coordinate (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y*g.width+x], nil
}

// Set writes the state of the cell at (x, y), keeping the population count
// current. Out-of-bounds coordinates are an error.
func (g *Grid) Set(x, y int, s CellState) error {
	if !g.contains(x, y) {
		return errors.Errorf("[Set] coordinate (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height)
	}
	idx := y*g.width + x
	switch {
	case g.cells[idx] == Dead && s == Alive:
		g.population++
	case g.cells[idx] == Alive && s == Dead:
		g.population--
	}
	g.cells[idx] = s
	return nil
}

// UpdateStates computes the next generation and returns it as a new Grid of
// the same dimensions. The receiver is only read, never written: every cell's
// next state depends solely on the previous generation, regardless of the
// order cells are visited in.
func (g *Grid) UpdateStates() *Grid {
	next := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]CellState, len(g.cells)),
	}

	for y := range g.height {
		for x := range g.width {
			alive := g.cells[y*g.width+x] == Alive
			if rules.Alive(alive, g.liveNeighbors(x, y)) {
				next.cells[y*g.width+x] = Alive
				next.population++
			}
		}
	}
	return next
}

// liveNeighbors counts Alive cells among the 8 surrounding positions.
// Positions outside the grid do not exist and contribute nothing; the board
// edge is hard, with no toroidal wraparound.
func (g *Grid) liveNeighbors(x, y int) (count int) {
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.contains(nx, ny) && g.cells[ny*g.width+nx] == Alive {
			count++
		}
	}
	return
}

// contains reports whether (x, y) is a valid coordinate.
func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Hash returns an MD5 digest of the cell states, used to detect repeated
// generations without retaining full grid copies.
func (g *Grid) Hash() string {
	h := md5.New()
	for _, c := range g.cells {
		h.Write([]byte{byte(c)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid with the default glyphs, one line per row.
func (g *Grid) String() string {
	return Renderer{}.Render(g)
}
