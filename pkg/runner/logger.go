package runner

import (
	"github.com/sirupsen/logrus"
)

// Logger is the sink the runner narrates a run to. The runner doesn't
// depend on any buffering the sink does.
type Logger interface {
	Log(message string)
}

// LoggerFunc adapts a plain function into a Logger.
type LoggerFunc func(message string)

// Log implements Logger.
func (f LoggerFunc) Log(message string) {
	f(message)
}

type logrusLogger struct {
	log logrus.FieldLogger
}

// NewLogrusLogger returns a Logger that writes every message to log at the
// info level.
func NewLogrusLogger(log logrus.FieldLogger) Logger {
	return logrusLogger{log}
}

func (l logrusLogger) Log(message string) {
	l.log.Info(message)
}
