package dijkstra

import "github.com/assert0/aoc24/gridgraph"

// reconstruct walks the predecessor sets backwards, breadth-first, from every
// goal state whose cost equals r.best. Each state is visited at most once and
// the position of every visited state is collected.
//
// Time:   O(S + P), P = total predecessor links.
// Memory: O(S) for visited flags.
func (r *runner) reconstruct() *Result {
	seen := make([]bool, len(r.dist))
	onPath := make([]bool, r.g.Len())

	var queue []int
	var ends []gridgraph.State
	for _, f := range gridgraph.Facings {
		id := r.goal*gridgraph.NumFacings + int(f)
		if r.dist[id] != r.best {
			continue
		}
		seen[id] = true
		queue = append(queue, id)
		ends = append(ends, r.state(id))
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		onPath[u/gridgraph.NumFacings] = true
		for _, p := range r.prev[u] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	// Index order is row-major order, so no sort is needed.
	cells := make([]gridgraph.Position, 0, len(queue))
	for i, ok := range onPath {
		if ok {
			cells = append(cells, r.g.Coordinate(i))
		}
	}

	return &Result{
		Cost:  r.best,
		Cells: cells,
		Ends:  ends,
	}
}
