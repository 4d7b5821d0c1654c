package gridgraph

import (
	"fmt"
	"strings"
)

// Cell classifies a single grid location.
type Cell uint8

const (
	// OutOfBounds is reported for coordinates outside the grid. Callers treat it like Wall.
	OutOfBounds Cell = iota
	// Wall is an impassable cell.
	Wall
	// Open is a walkable cell.
	Open
)

// String returns a lower-case name for the cell class.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	default:
		return "out-of-bounds"
	}
}

// Facing is one of the four cardinal directions.
type Facing uint8

const (
	// North points towards row 0.
	North Facing = iota
	// East points towards the last column.
	East
	// South points towards the last row.
	South
	// West points towards column 0.
	West
)

// NumFacings is the number of distinct facings; every cell carries this many search states.
const NumFacings = 4

// facingOffsets maps a Facing to its (row, col) delta.
var facingOffsets = [NumFacings]Position{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

var facingNames = [NumFacings]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

// Facings lists every facing in index order (North, East, South, West).
var Facings = [NumFacings]Facing{North, East, South, West}

// Valid reports whether f is one of the four cardinal directions.
func (f Facing) Valid() bool { return f < NumFacings }

// Offset returns the (row, col) delta of a single step in direction f.
// Complexity: O(1).
func (f Facing) Offset() Position { return facingOffsets[f] }

// String returns the lower-case direction name.
func (f Facing) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Facing(%d)", uint8(f))
	}
	return facingNames[f]
}

// ParseFacing accepts a direction name ("north"), its initial ("n"),
// or an arrow glyph ("^", ">", "v", "<"). Matching is case-insensitive.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up", "^":
		return North, nil
	case "east", "e", "right", ">":
		return East, nil
	case "south", "s", "down", "v":
		return South, nil
	case "west", "w", "left", "<":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFacing, s)
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position one cell away in direction f.
func (p Position) Step(f Facing) Position {
	d := facingOffsets[f]
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// State is a position plus the direction currently faced.
// It is the unit the oriented search operates on.
type State struct {
	Pos    Position
	Facing Facing
}

// String formats the state as "(row,col)/facing".
func (s State) String() string {
	return s.Pos.String() + "/" + s.Facing.String()
}

// Grid is an immutable rectangular maze with a designated start, start facing and goal.
// Cells are stored row-major; every accessor is O(1).
// A Grid is never mutated after construction and may be shared between goroutines.
type Grid struct {
	rows, cols  int
	cells       []Cell
	start, goal Position
	facing      Facing
}
