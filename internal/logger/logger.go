// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	base *logrus.Logger
	once sync.Once
)

// NewLogger returns the process-wide logrus logger.
// Every package holds the same instance, so Configure applies everywhere.
func NewLogger() *logrus.Logger {
	once.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stdout)
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		base.SetLevel(logrus.DebugLevel)
	})
	return base
}

// Configure sets the level of the shared logger. Debug mode always wins over
// the requested level.
func Configure(level string, debug bool) error {
	log := NewLogger()
	if debug {
		log.SetLevel(logrus.DebugLevel)
		return nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}

// SetOutput redirects the shared logger, mostly for tests.
func SetOutput(w io.Writer) {
	NewLogger().SetOutput(w)
}
