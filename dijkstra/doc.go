// Package dijkstra provides an oriented shortest-path search over a maze where
// turning is expensive, with tie-complete recovery of every optimal cell.
//
// Overview:
//
//   - Solve computes the minimum cost from the grid's start state (start cell,
//     start facing) to any state at the goal cell.
//   - Moving one cell forward costs StepCost (1). Moving one cell in any other
//     direction costs TurnStepCost (1001), a quarter turn and a reversal alike.
//   - Every cell that lies on at least one minimum-cost path is returned in
//     Result.Cells, not just the cells of one such path.
//
// When to use:
//
//   - Scoring reindeer-style maze walks where a 90° turn costs 1000 points.
//   - Counting the “best seats”: cells on any optimal route.
//   - As a reference for uniform-cost search over (position, heading) states.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - EarlyStop (default on): stops as soon as the goal cost is settled.
//   - MaxCost: caps exploration; goals beyond the cap are reported unreachable.
//   - OnFinalize: observe states in the order their costs become final.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = 4·W·H states.
//   - Space: O(S) for the cost table, predecessor sets and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *gridgraph.Grid to Solve.
//   - ErrUnreachable:
//     Returned if no state at the goal cell can be reached. This is an outcome,
//     never encoded as a numeric cost.
//   - ErrOptionViolation:
//     Returned if an option was given an invalid value (e.g. negative MaxCost).
//
// API reference:
//
//	func Solve(
//	    g *gridgraph.Grid,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - Result.Cost:  minimum cost, ≥ 0.
//	  - Result.Cells: every optimal cell, sorted row-major; includes start and goal.
//	  - Result.Ends:  goal states attaining Cost.
//
// Thread safety:
//
//   - Solve keeps all mutable state local to the call. The grid is read-only,
//     so any number of goroutines may solve the same grid at once.
//
// See also:
//
//   - gridgraph.Parse: build a Grid from the text format.
//   - batch.Solve: solve several grids concurrently.
package dijkstra
