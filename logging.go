// Structured logging for the reactor package.
//
// The reactor itself never chooses a logging backend; it only ever
// talks to the Logger interface. NewDefaultLogger gives a minimal
// built-in backend; NewLogrusLogger (logging_logrus.go) adapts a
// github.com/sirupsen/logrus.Logger for callers who already standardize
// on it.
package reactor

import (
	"fmt"
	"os"
	"sync/atomic"
)

// LogLevel is the severity of a log entry.
type LogLevel int32

const (
	// LevelDebug is for per-operation tracing (enqueue/dequeue/fire/cleanup).
	LevelDebug LogLevel = iota
	// LevelInfo is for lifecycle transitions.
	LevelInfo
	// LevelWarn is for recoverable anomalies (poll errors, stop drain).
	LevelWarn
	// LevelError is for unrecoverable conditions.
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// LogEntry is one structured log record emitted by the reactor.
type LogEntry struct {
	Level   LogLevel
	Message string
	FD      int
	Kind    Kind
	Status  Status
	Err     error
}

// Logger is the structured logging interface the reactor writes to.
type Logger interface {
	Log(entry LogEntry)
	IsEnabled(level LogLevel) bool
}

// NewNoOpLogger returns a Logger that discards everything, used as the
// default when no logger option is supplied.
func NewNoOpLogger() Logger { return noOpLogger{} }

type noOpLogger struct{}

func (noOpLogger) Log(LogEntry) {}

func (noOpLogger) IsEnabled(LogLevel) bool { return false }

// DefaultLogger is a minimal Logger writing plain lines to an *os.File.
type DefaultLogger struct {
	level atomic.Int32
	Out   *os.File
}

// NewDefaultLogger creates a logger over os.Stderr with the given
// minimum level.
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	l := &DefaultLogger{Out: os.Stderr}
	l.level.Store(int32(level))
	return l
}

// SetLevel changes the minimum level at runtime.
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level.Store(int32(level))
}

// IsEnabled reports whether level would be logged.
func (l *DefaultLogger) IsEnabled(level LogLevel) bool {
	return int32(level) >= l.level.Load()
}

// Log writes a single line for entry, if its level is enabled.
func (l *DefaultLogger) Log(entry LogEntry) {
	if !l.IsEnabled(entry.Level) {
		return
	}
	if entry.Err != nil {
		fmt.Fprintf(l.Out, "[%s] %s fd=%d kind=%s status=%s err=%v\n",
			entry.Level, entry.Message, entry.FD, entry.Kind, entry.Status, entry.Err)
		return
	}
	fmt.Fprintf(l.Out, "[%s] %s fd=%d kind=%s status=%s\n",
		entry.Level, entry.Message, entry.FD, entry.Kind, entry.Status)
}
