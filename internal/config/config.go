// Package config centralizes the CLI-flag-backed and environment-backed
// knobs shared by every subcommand: verbosity, color, and the recursion
// guard that protects the VM's host call stack from pathological user
// recursion.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// DefaultMaxDepth bounds nested lambda execution when MINICLJ_MAX_DEPTH is
// unset or unparsable. It's large enough that no well-behaved recur-based
// loop ever approaches it, but small enough to fail before the Go runtime's
// own stack guard would panic the process.
const DefaultMaxDepth = 100000

// Config holds the runtime knobs every subcommand reads.
type Config struct {
	Verbose  bool
	NoColor  bool
	MaxDepth int
}

// FromEnv builds a Config from environment variables, applying CLI flag
// overrides on top. verbose and noColor come from the CLI flags parsed by
// main; MINICLJ_MAX_DEPTH is environment-only since it's a host safety
// valve, not something a user tunes per invocation.
func FromEnv(verbose, noColor bool) Config {
	cfg := Config{
		Verbose:  verbose,
		NoColor:  noColor || os.Getenv("NO_COLOR") != "",
		MaxDepth: DefaultMaxDepth,
	}
	if raw := os.Getenv("MINICLJ_MAX_DEPTH"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxDepth = n
		}
	}
	return cfg
}

// Logger builds the slog.Logger every subcommand's compile/run phases log
// through, leveled by Verbose.
func (c Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

