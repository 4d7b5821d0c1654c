package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assert0/aoc24/gridgraph"
)

// TestRender_RoundTrip ensures String reproduces the parsed text.
func TestRender_RoundTrip(t *testing.T) {
	src := "#######\n#S..#.#\n#.#...#\n#...#E#\n#######\n"
	g, err := gridgraph.ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, src, g.String())

	again, err := gridgraph.ParseString(g.String())
	require.NoError(t, err)
	assert.Equal(t, g.Start(), again.Start())
	assert.Equal(t, g.Goal(), again.Goal())
}

// TestRender_Marks overlays marks, including over start and goal, and ignores out-of-bounds marks.
func TestRender_Marks(t *testing.T) {
	g, err := gridgraph.ParseString("#####\n#S.E#\n#####\n")
	require.NoError(t, err)

	got := g.Render([]gridgraph.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 7, Col: 7},
	})
	assert.Equal(t, "#####\n#OOO#\n#####\n", got)

	custom := g.RenderWith(gridgraph.Glyphs{Wall: '█', Open: ' ', Start: 'A', Goal: 'B'}, '*',
		[]gridgraph.Position{{Row: 1, Col: 2}})
	assert.Equal(t, "█████\n█A*B█\n█████\n", custom)
}
