package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

// GetLogger returns the process-wide JSON logger.
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))
}

// SetOutput redirects the logger; the CLI sends logs to stderr so stdout stays clean.
func SetOutput(w io.Writer) {
	logg.SetOutput(w)
}

func levelFromEnv(v string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(v))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return logg.WithField("component", name)
}
