package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Log levels accepted in config (log.level).
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. The first call fixes the level;
// later calls return the same instance whatever level they pass.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(normalizeLevel(level))
	})
	return globalLogger
}

// Nop returns a logger that discards everything. Used by tests and by
// components constructed without a logger.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Named returns a child logger tagged with the component name.
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{SugaredLogger: l.SugaredLogger.Named(component)}
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
