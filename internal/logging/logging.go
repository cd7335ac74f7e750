// Package logging builds the logrus loggers used by the CLI and server.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out (stderr when nil) at the named
// level. Accepts every name logrus.ParseLevel accepts.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	return l, nil
}

// NewJSON is New with the JSON formatter, for the long-running server.
func NewJSON(level string, out io.Writer) (*logrus.Logger, error) {
	l, err := New(level, out)
	if err != nil {
		return nil, err
	}
	l.SetFormatter(&logrus.JSONFormatter{})

	return l, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}
