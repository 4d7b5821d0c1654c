package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/assert0/aoc24/gridgraph"
	"github.com/assert0/aoc24/internal/app"
)

// Environment variables that supply flag defaults.
const (
	EnvLogLevel  = "REINDEER_LOG_LEVEL"
	EnvLogFormat = "REINDEER_LOG_FORMAT"
	EnvWorkers   = "REINDEER_WORKERS"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("reindeer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
reindeer - cheapest routes through oriented mazes.

Usage:
  reindeer [options] FILE...

Arguments:
  FILE
    A maze: '#' walls, '.' floor, one 'S' start and one 'E' goal.
    Prints the lowest score (Part 1) and the number of tiles on any
    best path (Part 2).

Options:
`)
		flagSet.PrintDefaults()
	}

	defaultWorkers := 0
	if raw, ok := os.LookupEnv(EnvWorkers); ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %q is not a number", EnvWorkers, raw)}
		}
		defaultWorkers = n
	}

	configFlag := flagSet.String("config", "", "Path to an HCL job file listing mazes.")
	logFormatFlag := flagSet.String("log-format", os.Getenv(EnvLogFormat), "Log output format. Options: 'text' (default) or 'json'.")
	logLevelFlag := flagSet.String("log-level", os.Getenv(EnvLogLevel), "Set the logging level. Options: 'debug', 'info' (default), 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", defaultWorkers, "Number of mazes solved concurrently. 0 uses the job file or the CPU count.")
	renderFlag := flagSet.Bool("render", false, "Print each maze with the best-path tiles marked 'O'.")
	facingFlag := flagSet.String("facing", "", "Direction faced at the start: north, east, south or west. Default east.")
	serveFlag := flagSet.String("serve", "", "Serve the solver over HTTP on this address instead of solving files.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 && *configFlag == "" && *serveFlag == "" {
		slog.Debug("No maze given, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *facingFlag != "" {
		if _, err := gridgraph.ParseFacing(*facingFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid facing: must be 'north', 'east', 'south' or 'west'"}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Paths:       flagSet.Args(),
		ConfigPath:  *configFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Workers:     *workersFlag,
		StartFacing: *facingFlag,
		Render:      *renderFlag,
		ServeAddr:   *serveFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
