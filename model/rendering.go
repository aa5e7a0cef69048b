package model

import "strings"

// Default glyphs for rendering cell states.
const (
	DefaultAliveGlyph = 'X'
	DefaultDeadGlyph  = ' '
)

// Renderer turns a grid into its textual form, one glyph per cell and one
// line per row. The zero value renders with the default glyphs.
type Renderer struct {
	AliveGlyph rune
	DeadGlyph  rune
}

// NewRenderer returns a Renderer using the given glyphs.
func NewRenderer(alive, dead rune) Renderer {
	return Renderer{AliveGlyph: alive, DeadGlyph: dead}
}

// Render produces the grid's textual form, each row terminated by a newline.
func (r Renderer) Render(g *Grid) string {
	var (
		alive = r.aliveGlyph()
		dead  = r.deadGlyph()
		b     strings.Builder
	)
	b.Grow((g.width + 1) * g.height)

	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] == Alive {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r Renderer) aliveGlyph() rune {
	if r.AliveGlyph == 0 {
		return DefaultAliveGlyph
	}
	return r.AliveGlyph
}

func (r Renderer) deadGlyph() rune {
	if r.DeadGlyph == 0 {
		return DefaultDeadGlyph
	}
	return r.DeadGlyph
}
