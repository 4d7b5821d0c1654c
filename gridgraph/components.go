package gridgraph

// Component collects the open cells reachable from `from` through 4-connected
// open neighbours, ignoring facing. Returns row-major cell indices in BFS order,
// or nil when `from` is not an open cell.
//
// To convert an index back to a Position, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Component(from Position) []int {
	if !g.IsOpen(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, f := range Facings {
			v := u.Step(f)
			if !g.IsOpen(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

// Connected reports whether b can be reached from a by moving between
// orthogonally adjacent open cells.
// Time: O(W·H).
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	target := g.Index(b)
	for _, i := range g.Component(a) {
		if i == target {
			return true
		}
	}
	return false
}
