// Package dijkstra defines core types and configuration options
// for the oriented shortest-path search over a gridgraph.Grid.
//
// The search runs over states (row, col, facing). Moving one cell in the
// direction currently faced costs StepCost; moving one cell in any other
// direction costs TurnStepCost and leaves the state facing the move direction.
//
// Options:
//
//	– EarlyStop:  stop once every frontier entry is costlier than the best goal cost (default true).
//	– MaxCost:    states whose cost would exceed this cap are not explored.
//	– OnFinalize: hook invoked once per state when its cost becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrUnreachable     if no state at the goal cell can be reached.
//	– ErrOptionViolation if an option received an invalid argument.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/assert0/aoc24/gridgraph"
)

// Move costs. A direction change is charged TurnStepCost whether it is a
// quarter turn or a reversal.
const (
	// StepCost is charged for a move in the direction currently faced.
	StepCost int64 = 1
	// TurnStepCost is charged for a move in any other direction: one turn (1000) plus one step (1).
	TurnStepCost int64 = 1001
)

// Infinity marks a state with no known route.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrUnreachable indicates that no state at the goal cell can be reached
	// from the start state. It is an outcome, not a malfunction.
	ErrUnreachable = errors.New("dijkstra: goal is unreachable")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of Solve.
//
// EarlyStop  – stop once the cheapest frontier entry exceeds the best goal cost.
// MaxCost    – states costlier than this are never relaxed. Must be ≥ 0.
//
//	Default is Infinity (no cap).
//
// OnFinalize – called once for each state whose cost becomes final, in pop order.
type Options struct {
	EarlyStop  bool
	MaxCost    int64
	OnFinalize func(s gridgraph.State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithEarlyStop toggles the early termination once the goal cost is settled.
// Disabling it drains the frontier; results are identical either way.
func WithEarlyStop(on bool) Option {
	return func(o *Options) {
		o.EarlyStop = on
	}
}

// WithMaxCost caps exploration: a state whose cost would exceed max is never recorded.
// A goal cheaper than or equal to max is still found exactly.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnFinalize registers a callback run when a state's cost becomes final.
func WithOnFinalize(fn func(s gridgraph.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - EarlyStop:  true.
//   - MaxCost:    Infinity.
//   - OnFinalize: no-op.
func DefaultOptions() Options {
	return Options{
		EarlyStop:  true,
		MaxCost:    Infinity,
		OnFinalize: func(gridgraph.State, int64) {},
	}
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Cost is the minimum total cost from the start state to any state at the goal cell.
	Cost int64
	// Cells holds every position lying on at least one minimum-cost path,
	// sorted row-major. It always contains the start and the goal.
	Cells []gridgraph.Position
	// Ends lists the goal states (by facing order) whose cost equals Cost.
	Ends []gridgraph.State
}

// Tiles returns the number of distinct cells on minimum-cost paths.
func (r *Result) Tiles() int { return len(r.Cells) }

// Contains reports whether p lies on at least one minimum-cost path.
// Complexity: O(log n) over the sorted Cells.
func (r *Result) Contains(p gridgraph.Position) bool {
	lo, hi := 0, len(r.Cells)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(r.Cells[mid], p) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(r.Cells) && r.Cells[lo] == p
}

// less orders positions row-major.
func less(a, b gridgraph.Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
