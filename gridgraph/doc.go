// Package gridgraph models a rectangular maze as the input of an oriented
// shortest-path search.
//
// What:
//
//   - Grid holds Wall/Open cells, a start cell, a start Facing and a goal cell.
//   - Classify answers Wall, Open or OutOfBounds in O(1); OutOfBounds behaves like Wall.
//   - Parse reads the text format ('#' wall, '.' open, 'S' start, 'E' goal).
//   - Render overlays a set of cells (e.g. every cell on a best path) with 'O'.
//   - Component / Connected answer plain 4-connectivity between open cells.
//
// Why:
//
//   - Puzzle mazes: score reindeer-style walks where turning is expensive.
//   - Robotics toy models: position plus heading as the search state.
//
// Complexity:
//
//   - NewGrid, Parse, Render: O(W×H) time and memory.
//   - Classify, InBounds, Index, Coordinate: O(1).
//   - Component: O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - WithGlyphs: custom alphabet for Parse.
//   - WithStartFacing: direction faced at the start (default East).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed shape.
//   - ErrNoStart, ErrNoGoal, ErrDuplicateStart, ErrDuplicateGoal: endpoint mistakes.
//   - ErrUnknownGlyph, ErrGlyphConflict: alphabet problems.
//   - ErrOutOfBounds, ErrBlockedEndpoint, ErrBadFacing, ErrNilClassifier: bad NewGrid arguments.
//
// A Grid is immutable; WithWall returns a modified copy.
package gridgraph
