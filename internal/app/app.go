// Package app wires the reindeer command: it loads mazes from files and
// job files, solves them through the batch runner and prints both answers
// per maze, or serves the solver over HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/assert0/aoc24/batch"
	"github.com/assert0/aoc24/dijkstra"
	"github.com/assert0/aoc24/gridgraph"
	"github.com/assert0/aoc24/internal/config"
	"github.com/assert0/aoc24/internal/ctxlog"
	"github.com/assert0/aoc24/internal/httpapi"
)

// App encapsulates the application's configuration and output streams.
type App struct {
	outW   io.Writer
	logW   io.Writer
	config *Config
	env    map[string]string
}

// NewApp returns an App writing answers to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logW:   logW,
		config: cfg,
		env:    config.Environ(),
	}
}

// settings is Config merged with the job file.
type settings struct {
	logLevel  string
	logFormat string
	workers   int
	job       *config.File
}

func (a *App) resolve() (*settings, error) {
	s := &settings{
		logLevel:  a.config.LogLevel,
		logFormat: a.config.LogFormat,
		workers:   a.config.Workers,
	}
	if a.config.ConfigPath != "" {
		job, err := config.Load(a.config.ConfigPath, a.env)
		if err != nil {
			return nil, err
		}
		s.job = job
		if s.logLevel == "" {
			s.logLevel = job.LogLevel
		}
		if s.logFormat == "" {
			s.logFormat = job.LogFormat
		}
		if s.workers == 0 {
			s.workers = job.Workers
		}
	}
	if s.workers == 0 {
		s.workers = runtime.NumCPU()
	}
	return s, nil
}

// Run executes the configured mode until it completes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	s, err := a.resolve()
	if err != nil {
		return err
	}

	logger := newLogger(s.logLevel, s.logFormat, a.logW).With("run_id", uuid.New().String())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "workers", s.workers)

	if a.config.ServeAddr != "" {
		parseOpts, err := a.parseOptions(s.job, nil)
		if err != nil {
			return err
		}
		srv := httpapi.New(httpapi.Config{Logger: logger, ParseOptions: parseOpts})
		return srv.Run(ctx, a.config.ServeAddr)
	}

	jobs, err := a.loadJobs(ctx, s.job)
	if err != nil {
		return err
	}

	outcomes, err := batch.Solve(ctx, jobs, batch.WithWorkers(s.workers))
	if err != nil {
		return err
	}
	return a.report(jobs, outcomes)
}

// parseOptions layers the job file, the maze block and the -facing flag.
func (a *App) parseOptions(job *config.File, m *config.Maze) ([]gridgraph.ParseOption, error) {
	var opts []gridgraph.ParseOption
	if job != nil {
		fileOpts, err := job.ParseOptions(m)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}
	if a.config.StartFacing != "" {
		f, err := gridgraph.ParseFacing(a.config.StartFacing)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gridgraph.WithStartFacing(f))
	}
	return opts, nil
}

// loadJobs reads every maze named on the command line, then every maze
// block of the job file.
func (a *App) loadJobs(ctx context.Context, job *config.File) ([]batch.Job, error) {
	logger := ctxlog.FromContext(ctx)

	var jobs []batch.Job
	for _, path := range a.config.Paths {
		opts, err := a.parseOptions(job, nil)
		if err != nil {
			return nil, err
		}
		g, err := loadGrid(path, opts)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, batch.Job{Name: path, Grid: g})
	}
	if job != nil {
		for _, m := range job.Mazes {
			opts, err := a.parseOptions(job, m)
			if err != nil {
				return nil, err
			}
			g, err := loadGrid(job.MazePath(m), opts)
			if err != nil {
				return nil, fmt.Errorf("maze %q: %w", m.Name, err)
			}
			jobs = append(jobs, batch.Job{Name: m.Name, Grid: g})
		}
	}

	logger.Debug("Mazes loaded.", "count", len(jobs))
	return jobs, nil
}

func loadGrid(path string, opts []gridgraph.ParseOption) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gridgraph.Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// report prints both answers per job. A header line names the maze when
// more than one was solved.
func (a *App) report(jobs []batch.Job, outcomes []batch.Outcome) error {
	var failed []error
	for i, o := range outcomes {
		if len(outcomes) > 1 {
			fmt.Fprintf(a.outW, "== %s\n", o.Name)
		}
		switch {
		case o.Reachable():
			fmt.Fprintf(a.outW, "Part 1: %d\nPart 2: %d\n", o.Result.Cost, o.Result.Tiles())
			if a.config.Render {
				fmt.Fprint(a.outW, jobs[i].Grid.Render(o.Result.Cells))
			}
		case errors.Is(o.Err, dijkstra.ErrUnreachable):
			fmt.Fprintln(a.outW, "Part 1: unreachable")
		default:
			failed = append(failed, fmt.Errorf("%s: %w", o.Name, o.Err))
		}
	}
	return errors.Join(failed...)
}
