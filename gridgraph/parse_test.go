package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assert0/aoc24/gridgraph"
)

// TestParse_Basic parses a small maze and checks shape, endpoints and walls.
//
//	#####
//	#S.E#
//	#.#.#
//	#####
func TestParse_Basic(t *testing.T) {
	g, err := gridgraph.ParseString("#####\n#S.E#\n#.#.#\n#####\n")
	require.NoError(t, err)

	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 1}, g.Start())
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 3}, g.Goal())
	assert.Equal(t, gridgraph.East, g.StartFacing())
	assert.Equal(t, gridgraph.Wall, g.Classify(2, 2))
	assert.Equal(t, gridgraph.Open, g.Classify(2, 1))
	assert.Equal(t, 5, g.OpenCount())
}

// TestParse_LineEndings tolerates CRLF and trailing blank lines.
func TestParse_LineEndings(t *testing.T) {
	g, err := gridgraph.ParseString("###\r\n#S#\r\n#E#\r\n###\r\n\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

// TestParse_Options checks custom glyphs and start facing.
func TestParse_Options(t *testing.T) {
	gl := gridgraph.Glyphs{Wall: 'X', Open: ' ', Start: 'A', Goal: 'B'}
	g, err := gridgraph.ParseString("XXXXX\nXA BX\nXXXXX\n",
		gridgraph.WithGlyphs(gl), gridgraph.WithStartFacing(gridgraph.North))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.North, g.StartFacing())
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 3}, g.Goal())
	assert.Equal(t, gridgraph.Open, g.Classify(1, 2))
}

// TestParse_Errors checks every construction error of the text format.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  []gridgraph.ParseOption
		err   error
	}{
		{"Empty", "", nil, gridgraph.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", nil, gridgraph.ErrEmptyGrid},
		{"Ragged", "#S#\n#E\n", nil, gridgraph.ErrNonRectangular},
		{"NoStart", "#.E#\n", nil, gridgraph.ErrNoStart},
		{"NoGoal", "#S.#\n", nil, gridgraph.ErrNoGoal},
		{"TwoStarts", "SSE\n", nil, gridgraph.ErrDuplicateStart},
		{"TwoGoals", "SEE\n", nil, gridgraph.ErrDuplicateGoal},
		{"UnknownGlyph", "S?E\n", nil, gridgraph.ErrUnknownGlyph},
		{"GlyphConflict", "S.E\n", []gridgraph.ParseOption{
			gridgraph.WithGlyphs(gridgraph.Glyphs{Wall: '#', Open: '.', Start: 'S', Goal: 'S'}),
		}, gridgraph.ErrGlyphConflict},
		{"BadFacing", "S.E\n", []gridgraph.ParseOption{
			gridgraph.WithStartFacing(gridgraph.Facing(9)),
		}, gridgraph.ErrBadFacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseString(tc.input, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseString(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}
