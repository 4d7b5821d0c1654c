package gridgraph

import "strings"

// PathGlyph marks highlighted cells in Render output.
const PathGlyph = 'O'

// Render draws the grid with DefaultGlyphs and PathGlyph over every marked
// position. Out-of-bounds marks are ignored. Rows end with '\n'.
// Complexity: O(W×H + len(marked)).
func (g *Grid) Render(marked []Position) string {
	return g.RenderWith(DefaultGlyphs(), PathGlyph, marked)
}

// RenderWith is Render with a custom alphabet and highlight glyph.
// Marks take precedence over the start and goal glyphs.
func (g *Grid) RenderWith(gl Glyphs, mark rune, marked []Position) string {
	hit := make([]bool, len(g.cells))
	for _, p := range marked {
		if g.InBounds(p.Row, p.Col) {
			hit[g.Index(p)] = true
		}
	}

	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			i := r*g.cols + c
			switch {
			case hit[i]:
				b.WriteRune(mark)
			case p == g.start:
				b.WriteRune(gl.Start)
			case p == g.goal:
				b.WriteRune(gl.Goal)
			case g.cells[i] == Wall:
				b.WriteRune(gl.Wall)
			default:
				b.WriteRune(gl.Open)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid without highlights.
func (g *Grid) String() string {
	return g.Render(nil)
}
