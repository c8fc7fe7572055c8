// Package logging wraps logrus the way the teacher's pkg/util/log.go does:
// a single package-level logger configured once at startup, with field
// helpers for the contexts this daemon logs about.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetLevel sets the logging level from a logrus level name.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// SetOutput sets the log output destination.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// SetJSONFormat switches to JSON-formatted output.
func SetJSONFormat() {
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
}

// WithController returns a logger tagged with the originating controller
// name, matching the "[Controller] ..." prefix convention of the original
// hlxproxyd sources (SPEC_FULL.md §C.2).
func WithController(name string) *logrus.Entry {
	return Log.WithField("controller", name)
}

// WithConnection returns a logger tagged with a downstream connection id.
func WithConnection(id uint64) *logrus.Entry {
	return Log.WithField("connection", id)
}

// WithExchange returns a logger tagged with an upstream exchange id.
func WithExchange(id uint64) *logrus.Entry {
	return Log.WithField("exchange", id)
}
