package reactor

import "github.com/sirupsen/logrus"

// logrusLogger adapts a *logrus.Logger to the Logger interface, for
// callers who already standardize their process's logging on logrus.
type logrusLogger struct {
	entry *logrus.Logger
}

// NewLogrusLogger wraps l as a reactor Logger. A nil l uses
// logrus.StandardLogger().
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: l}
}

func (l *logrusLogger) IsEnabled(level LogLevel) bool {
	return l.entry.IsLevelEnabled(toLogrusLevel(level))
}

func (l *logrusLogger) Log(entry LogEntry) {
	fields := logrus.Fields{
		"fd":     entry.FD,
		"kind":   entry.Kind.String(),
		"status": entry.Status.String(),
	}
	if entry.Err != nil {
		fields["error"] = entry.Err
	}
	l.entry.WithFields(fields).Log(toLogrusLevel(entry.Level), entry.Message)
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
