// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable before Init with
// logrus defaults so packages can log during tests.
var Log = logrus.New()

// Init configures the global logger with a specific level.
func Init(level string) {
	configure(Log, level, os.Stdout)
}

// NewLogger returns a separate logger with the same format as Log.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	configure(log, level, os.Stdout)
	return log
}

func configure(log *logrus.Logger, level string, out io.Writer) {
	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))
}

// ParseLevel maps a config string to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
