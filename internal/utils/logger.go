package utils

import (
	"github.com/sirupsen/logrus"
)

// NewLogger creates a logrus logger at the given level; an unknown level
// falls back to info.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log
}
