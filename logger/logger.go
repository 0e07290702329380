// Package logger provides a thin wrapper around zerolog so that every
// component of the commitment pipeline logs through a single, reconfigurable
// sink. Call sites use zerolog's event API on the logger returned by Logger().
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	mu     sync.RWMutex
)

func init() {
	logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Logger returns the global logger instance. Safe for concurrent use; callers
// typically chain it: logger.Logger().With().Str("stage", "ntt").Logger().
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the global logger, e.g. to redirect output in tests or attach
// caller-supplied fields for the lifetime of a process.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects the global logger's sink without touching its level or
// attached fields.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// Disable silences all output; useful for benchmarks where the hot path must
// never touch the logger, even at Trace level.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.Nop()
}
