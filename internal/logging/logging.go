// Package logging provides leveled console logging with charmbracelet/log.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
		Prefix:          "tk",
	}
}

// New creates a logger writing to stderr with the given options.
func New(opts Options) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           opts.Level,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// NewDefault creates a logger at warn level, or debug level when verbose
// is set. Verbose can also be forced via the TASKS_DEBUG environment
// variable.
func NewDefault(verbose bool) *log.Logger {
	opts := DefaultOptions()
	if verbose || os.Getenv("TASKS_DEBUG") != "" {
		opts.Level = log.DebugLevel
	}
	return New(opts)
}

// ParseLevel parses a string log level, falling back to warn.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
