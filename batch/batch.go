// Package batch solves several independent grids concurrently.
//
// Every job runs dijkstra.Solve on its own goroutine with its own per-call
// tables; grids are only read, so one grid may appear in several jobs.
// Parallelism is bounded by WithWorkers. Cancellation is observed between
// solves: a solve that has started always runs to completion.
//
// Per-job failures, including dijkstra.ErrUnreachable, are recorded in the
// job's Outcome and never abort the batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/assert0/aoc24/dijkstra"
	"github.com/assert0/aoc24/gridgraph"
	"github.com/assert0/aoc24/internal/ctxlog"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("batch: invalid option supplied")

// Job names one grid to solve.
type Job struct {
	Name string
	Grid *gridgraph.Grid
}

// Outcome is the result of one Job. Exactly one of Result and Err is set.
type Outcome struct {
	Name    string
	Result  *dijkstra.Result
	Err     error
	Elapsed time.Duration
}

// Reachable reports whether the job produced a cost.
func (o Outcome) Reachable() bool { return o.Err == nil && o.Result != nil }

// Options configures Solve.
type Options struct {
	// Workers bounds the number of concurrent solves. Must be ≥ 1.
	Workers int
	// Solve is forwarded to every dijkstra.Solve call.
	Solve []dijkstra.Option

	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions uses one worker per CPU and default solver options.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers bounds concurrency. n < 1 surfaces as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSolveOptions forwards options to every dijkstra.Solve call.
func WithSolveOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Solve = append(o.Solve, opts...)
	}
}

// Solve runs every job and returns outcomes in job order.
// It returns a non-nil error only for invalid options or when ctx is
// cancelled before all jobs have started; outcomes of jobs that never
// started carry ctx.Err().
func Solve(ctx context.Context, jobs []Job, opts ...Option) ([]Outcome, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	logger := ctxlog.FromContext(ctx)
	out := make([]Outcome, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	for i, job := range jobs {
		i, job := i, job
		out[i].Name = job.Name
		if err := egCtx.Err(); err != nil {
			out[i].Err = err
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			began := time.Now()
			res, err := dijkstra.Solve(job.Grid, cfg.Solve...)
			out[i].Result, out[i].Err = res, err
			out[i].Elapsed = time.Since(began)

			switch {
			case err == nil:
				logger.Debug("Solved maze.", "job", job.Name, "cost", res.Cost,
					"tiles", res.Tiles(), "elapsed", out[i].Elapsed)
			case errors.Is(err, dijkstra.ErrUnreachable):
				logger.Debug("Maze goal unreachable.", "job", job.Name, "elapsed", out[i].Elapsed)
			default:
				logger.Warn("Maze solve failed.", "job", job.Name, "error", err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}
