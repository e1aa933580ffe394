// Package rtlog is the small structured-logging wrapper used by the
// scheduler package (for overrun warnings) and the demo command. Logging is
// invoked only on anomalies, never from a hot read/write path.
package rtlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w at the given minimum level. A nil w
// defaults to os.Stderr.
func New(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Disabled returns a Logger that discards everything, the default for
// components that did not opt into a Logger via their options.
func Disabled() *Logger {
	return New(io.Discard, zerolog.Disabled)
}

// Info returns an event builder at info level.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn returns an event builder at warn level.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error returns an event builder at error level.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Debug returns an event builder at debug level.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
