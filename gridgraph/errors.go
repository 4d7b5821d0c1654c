package gridgraph

import "errors"

// Sentinel construction errors. Parse and NewGrid wrap them with position context.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNilClassifier indicates NewGrid was called without a classification function.
	ErrNilClassifier = errors.New("gridgraph: classify function is nil")
	// ErrNoStart indicates the input has no start cell.
	ErrNoStart = errors.New("gridgraph: no start cell")
	// ErrNoGoal indicates the input has no goal cell.
	ErrNoGoal = errors.New("gridgraph: no goal cell")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("gridgraph: more than one start cell")
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = errors.New("gridgraph: more than one goal cell")
	// ErrUnknownGlyph indicates a character that maps to no cell class.
	ErrUnknownGlyph = errors.New("gridgraph: unknown glyph")
	// ErrGlyphConflict indicates two roles share the same glyph.
	ErrGlyphConflict = errors.New("gridgraph: glyphs must be distinct")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrBlockedEndpoint indicates the start or goal lies on a wall.
	ErrBlockedEndpoint = errors.New("gridgraph: start and goal must be open cells")
	// ErrBadFacing indicates an unrecognised facing.
	ErrBadFacing = errors.New("gridgraph: invalid facing")
)
