// Package cli turns the reindeer command line into an app.Config.
//
// Flag defaults for logging and concurrency come from REINDEER_LOG_LEVEL,
// REINDEER_LOG_FORMAT and REINDEER_WORKERS, which the command may load from
// a .env file before Parse runs. Usage errors are reported as *ExitError
// with code 2.
package cli
