package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu            sync.Mutex
	defaultLogger *logrus.Logger
)

// GetLogger returns the shared logrus logger, creating it on first use.
// Packages grab this at init time so that ConfigureLogging can later adjust
// the level on a single instance.
func GetLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = logrus.New()
		defaultLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return defaultLogger
}

// SetAllLogLevels sets the level on the shared logger.
func SetAllLogLevels(level logrus.Level) {
	GetLogger().SetLevel(level)
}
