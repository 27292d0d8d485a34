// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Failure indicates a local failure (file I/O, record not found, TUI crash).
	Failure = 1

	// Usage indicates bad arguments, flags or configuration.
	Usage = 2

	// BackendError indicates an HTTP or network failure talking to the todo API.
	BackendError = 3
)
