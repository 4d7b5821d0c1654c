package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Glyphs maps characters of the text format to cell roles.
type Glyphs struct {
	Wall  rune // impassable cell
	Open  rune // walkable cell
	Start rune // walkable start cell, exactly one
	Goal  rune // walkable goal cell, exactly one
}

// DefaultGlyphs returns the classic maze alphabet: '#', '.', 'S', 'E'.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Wall:  '#',
		Open:  '.',
		Start: 'S',
		Goal:  'E',
	}
}

// validate rejects glyph sets where two roles share a character.
func (gl Glyphs) validate() error {
	seen := make(map[rune]string, 4)
	for _, r := range []struct {
		role  string
		glyph rune
	}{
		{"wall", gl.Wall},
		{"open", gl.Open},
		{"start", gl.Start},
		{"goal", gl.Goal},
	} {
		if prev, ok := seen[r.glyph]; ok {
			return fmt.Errorf("%w: %s and %s both use %q", ErrGlyphConflict, prev, r.role, r.glyph)
		}
		seen[r.glyph] = r.role
	}
	return nil
}

// ParseOptions configures Parse.
type ParseOptions struct {
	Glyphs      Glyphs
	StartFacing Facing
}

// ParseOption represents a functional option for configuring Parse.
type ParseOption func(*ParseOptions)

// DefaultParseOptions returns DefaultGlyphs with the start facing East.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Glyphs:      DefaultGlyphs(),
		StartFacing: East,
	}
}

// WithGlyphs overrides the character alphabet.
func WithGlyphs(gl Glyphs) ParseOption {
	return func(o *ParseOptions) {
		o.Glyphs = gl
	}
}

// WithStartFacing overrides the direction faced at the start cell.
func WithStartFacing(f Facing) ParseOption {
	return func(o *ParseOptions) {
		o.StartFacing = f
	}
}

// Parse reads a line-based character grid. Every line is one row; trailing
// blank lines and carriage returns are ignored.
//
// Errors (wrapped with the offending row/column):
//   - ErrEmptyGrid, ErrNonRectangular for malformed shapes.
//   - ErrUnknownGlyph for characters outside the alphabet.
//   - ErrNoStart, ErrNoGoal, ErrDuplicateStart, ErrDuplicateGoal for endpoint mistakes.
//   - ErrGlyphConflict, ErrBadFacing for invalid options.
//
// Complexity: O(W×H).
func Parse(r io.Reader, opts ...ParseOption) (*Grid, error) {
	cfg := DefaultParseOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Glyphs.validate(); err != nil {
		return nil, err
	}

	var lines [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, cols := len(lines), len(lines[0])
	classes := make([]Cell, rows*cols)
	var start, goal Position
	var haveStart, haveGoal bool
	gl := cfg.Glyphs

	for y, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), cols)
		}
		for x, ch := range line {
			p := Position{Row: y, Col: x}
			switch ch {
			case gl.Wall:
				classes[y*cols+x] = Wall
				continue
			case gl.Open:
			case gl.Start:
				if haveStart {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, start, p)
				}
				start, haveStart = p, true
			case gl.Goal:
				if haveGoal {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateGoal, goal, p)
				}
				goal, haveGoal = p, true
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, ch, p)
			}
			classes[y*cols+x] = Open
		}
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveGoal {
		return nil, ErrNoGoal
	}

	return NewGrid(rows, cols, func(row, col int) Cell {
		return classes[row*cols+col]
	}, start, goal, cfg.StartFacing)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...ParseOption) (*Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}
