// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"testing"
)

// TestComponent_TwoRooms tests Component on two rooms split by a wall column.
//
// Grid:
//
//	#######
//	#S.#..#
//	#..#.E#
//	#######
//
// Expected: the start room holds 4 cells, the goal room 4 cells, and they are not connected.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestComponent_TwoRooms(t *testing.T) {
	g, err := ParseString("#######\n#S.#..#\n#..#.E#\n#######\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	left := g.Component(g.Start())
	if len(left) != 4 {
		t.Fatalf("start room has %d cells; want 4", len(left))
	}
	right := g.Component(g.Goal())
	if len(right) != 4 {
		t.Fatalf("goal room has %d cells; want 4", len(right))
	}
	if g.Connected(g.Start(), g.Goal()) {
		t.Error("Connected(start, goal) = true; want false")
	}

	// BFS order starts at the source cell.
	if left[0] != g.Index(g.Start()) {
		t.Errorf("first cell = %d; want start index %d", left[0], g.Index(g.Start()))
	}
	sort.Ints(left)
	want := []int{g.index(1, 1), g.index(1, 2), g.index(2, 1), g.index(2, 2)}
	for i := range want {
		if left[i] != want[i] {
			t.Errorf("left[%d] = %d; want %d", i, left[i], want[i])
		}
	}
}

// TestComponent_Walls covers a wall source and the open corridor case.
func TestComponent_Walls(t *testing.T) {
	g, err := ParseString("#####\n#S.E#\n#####\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if comp := g.Component(Position{Row: 0, Col: 0}); comp != nil {
		t.Errorf("Component(wall) = %v; want nil", comp)
	}
	if comp := g.Component(Position{Row: -1, Col: 0}); comp != nil {
		t.Errorf("Component(out of bounds) = %v; want nil", comp)
	}
	if !g.Connected(g.Start(), g.Goal()) {
		t.Error("Connected(start, goal) = false; want true")
	}
	if g.Connected(g.Start(), Position{Row: 0, Col: 1}) {
		t.Error("Connected to a wall must be false")
	}
}

// index is the (row, col) shorthand used by the internal tests.
func (g *Grid) index(row, col int) int {
	return g.Index(Position{Row: row, Col: col})
}
