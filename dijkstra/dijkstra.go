// Package dijkstra implements a uniform-cost search over the oriented state
// space of a gridgraph.Grid and recovers every cell on any cheapest route.
//
// A state is (position, facing). From a state the search may move to any of
// the four orthogonal open neighbours: StepCost if the move keeps the current
// facing, TurnStepCost otherwise. States are processed in order of increasing
// cost using a min-heap priority queue.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 4 × W × H states.
//   - Each state is finalized at most once: S extractions from the heap.
//   - Each state has at most 4 outgoing moves, so at most 4S pushes.
//   - Space: O(S) for the cost table, predecessor sets and heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal-cost arrivals extend the predecessor set instead of replacing it, so the
//     reverse walk from the goal reaches every tied route.
//   - We stop once the cheapest frontier entry costs more than the best goal state (EarlyStop).
package dijkstra

import (
	"container/heap"

	"github.com/assert0/aoc24/gridgraph"
)

// Solve computes the minimum cost from the grid's start state to any state at
// its goal cell, and the set of cells lying on at least one path of that cost.
//
// Returns:
//
//   - res: Cost, Cells (sorted row-major) and the goal states attaining Cost.
//   - err: ErrUnreachable if no goal state can be reached; ErrNilGrid or
//     ErrOptionViolation for invalid inputs.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//
// Solve never mutates g; concurrent calls on the same grid are safe.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H
//   - Space: O(S)
func Solve(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Walls alone can seal the goal; skip the state search in that case.
	if !g.Connected(g.Start(), g.Goal()) {
		return nil, ErrUnreachable
	}

	// 4) Per-call tables, one slot per (cell, facing).
	n := g.Len() * gridgraph.NumFacings
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([][]int, n),
		done:    make([]bool, n),
		pq:      make(statePQ, 0, g.OpenCount()),
		goal:    g.Index(g.Goal()),
		best:    Infinity,
	}

	// 5) Run the main loop.
	r.init()
	r.process()

	// 6) No goal state was finalized.
	if r.best == Infinity {
		return nil, ErrUnreachable
	}

	return r.reconstruct(), nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only within Solve.
	options Options         // Configuration options.
	dist    []int64         // State ID → current best cost from the start state.
	prev    [][]int         // State ID → predecessor state IDs at the current best cost.
	done    []bool          // State ID → cost is finalized.
	pq      statePQ         // Min-heap of *stateItem for lazy priority queue.
	goal    int             // Row-major index of the goal cell.
	best    int64           // Cheapest finalized goal state so far.
}

// id packs a state into its table slot: cellIndex*4 + facing.
func (r *runner) id(s gridgraph.State) int {
	return r.g.Index(s.Pos)*gridgraph.NumFacings + int(s.Facing)
}

// state unpacks a table slot.
func (r *runner) state(id int) gridgraph.State {
	return gridgraph.State{
		Pos:    r.g.Coordinate(id / gridgraph.NumFacings),
		Facing: gridgraph.Facing(id % gridgraph.NumFacings),
	}
}

// init sets every cost to Infinity and pushes the start state with cost 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
	}

	start := r.id(gridgraph.State{Pos: r.g.Start(), Facing: r.g.StartFacing()})
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{id: start, cost: 0})
}

// process repeatedly extracts the cheapest state and relaxes its moves.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - EarlyStop is set and the cheapest entry costs more than the best goal state.
func (r *runner) process() {
	cfg := r.options
	var u int
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest item from the heap.
		item := heap.Pop(&r.pq).(*stateItem)
		u = item.id
		d = item.cost

		// 2) Skip stale entries: already finalized, or superseded by a cheaper push.
		if r.done[u] || d > r.dist[u] {
			continue
		}

		// 3) Every goal state tied with best has already been popped.
		if cfg.EarlyStop && d > r.best {
			break
		}

		// 4) Cost d is now final for u.
		r.done[u] = true
		s := r.state(u)
		cfg.OnFinalize(s, d)

		if u/gridgraph.NumFacings == r.goal && d < r.best {
			r.best = d
		}

		// 5) Relax the (up to 4) legal moves.
		r.relax(u, s, d)
	}
}

// relax examines the four moves out of state s (table slot u, final cost d).
// A strictly cheaper candidate replaces the destination's predecessor set and is
// pushed; an equal-cost candidate only joins the predecessor set.
func (r *runner) relax(u int, s gridgraph.State, d int64) {
	var nd, w int64
	for _, m := range gridgraph.Facings {
		next := s.Pos.Step(m)
		if !r.g.IsOpen(next) {
			continue
		}

		w = StepCost
		if m != s.Facing {
			w = TurnStepCost
		}
		nd = d + w
		if nd > r.options.MaxCost {
			continue
		}

		v := r.g.Index(next)*gridgraph.NumFacings + int(m)
		switch {
		case nd < r.dist[v]:
			r.dist[v] = nd
			r.prev[v] = append(r.prev[v][:0], u)
			heap.Push(&r.pq, &stateItem{id: v, cost: nd})
		case nd == r.dist[v]:
			// u is finalized once and reaches v through exactly one move,
			// so the slice never holds duplicates.
			r.prev[v] = append(r.prev[v], u)
		}
	}
}

// stateItem is a heap entry: a state slot and the cost it was pushed with.
type stateItem struct {
	id   int   // state slot
	cost int64 // cost from the start state
}

// statePQ is a min-heap (priority queue) of *stateItem, ordered by cost ascending.
// Ties are popped in unspecified order; results depend only on cost equality.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
