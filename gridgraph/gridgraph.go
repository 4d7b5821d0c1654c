package gridgraph

import (
	"fmt"
)

// NewGrid constructs a Grid of rows×cols cells, asking classify for every cell.
// Any class other than Open is stored as Wall.
// Returns ErrEmptyGrid if either dimension is not positive, ErrNilClassifier if classify is nil,
// ErrOutOfBounds if start or goal lies outside the grid, ErrBlockedEndpoint if either is a wall,
// and ErrBadFacing if facing is not a cardinal direction.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows, cols int, classify func(row, col int) Cell, start, goal Position, facing Facing) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if classify == nil {
		return nil, ErrNilClassifier
	}
	if !facing.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFacing, facing)
	}

	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if classify(r, c) == Open {
				cells[r*cols+c] = Open
			} else {
				cells[r*cols+c] = Wall
			}
		}
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		cells:  cells,
		start:  start,
		goal:   goal,
		facing: facing,
	}
	if err := g.checkEndpoint("start", start); err != nil {
		return nil, err
	}
	if err := g.checkEndpoint("goal", goal); err != nil {
		return nil, err
	}

	return g, nil
}

// checkEndpoint validates that p is an in-bounds open cell.
func (g *Grid) checkEndpoint(role string, p Position) error {
	switch g.Classify(p.Row, p.Col) {
	case OutOfBounds:
		return fmt.Errorf("%w: %s %v", ErrOutOfBounds, role, p)
	case Wall:
		return fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, role, p)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start cell.
func (g *Grid) Start() Position { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Position { return g.goal }

// StartFacing returns the direction faced at the start cell.
func (g *Grid) StartFacing() Facing { return g.facing }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Classify returns Wall, Open, or OutOfBounds for (row,col).
// Complexity: O(1).
func (g *Grid) Classify(row, col int) Cell {
	if !g.InBounds(row, col) {
		return OutOfBounds
	}
	return g.cells[row*g.cols+col]
}

// IsOpen reports whether p is an in-bounds open cell.
func (g *Grid) IsOpen(p Position) bool {
	return g.Classify(p.Row, p.Col) == Open
}

// Len returns the total number of cells (rows×cols).
func (g *Grid) Len() int { return len(g.cells) }

// OpenCount returns the number of open cells.
// Complexity: O(W×H).
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Index maps p to a row-major index: Row*Cols + Col.
// The result is meaningless for out-of-bounds positions.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// WithWall returns a copy of g in which p is a wall. g itself is unchanged.
// Returns ErrOutOfBounds for positions outside the grid and
// ErrBlockedEndpoint when p is the start or goal.
// Complexity: O(W×H).
func (g *Grid) WithWall(p Position) (*Grid, error) {
	if !g.InBounds(p.Row, p.Col) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if p == g.start || p == g.goal {
		return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
	}
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	cells[g.Index(p)] = Wall

	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		cells:  cells,
		start:  g.start,
		goal:   g.goal,
		facing: g.facing,
	}, nil
}
