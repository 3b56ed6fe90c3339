package circulis

import (
	"log/slog"
	"sync"
)

// The package logger carries the diagnostics channel: notices and
// warnings for operations that are ill-advised but not unsafe. It is
// package-level and swappable for tests or embedding applications.
var loggerState struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// SetLogger replaces the logger used for diagnostics. Passing nil
// restores slog.Default(). Safe to call from multiple goroutines.
func SetLogger(l *slog.Logger) {
	loggerState.mu.Lock()
	defer loggerState.mu.Unlock()
	loggerState.logger = l
}

func logger() *slog.Logger {
	loggerState.mu.RLock()
	l := loggerState.logger
	loggerState.mu.RUnlock()
	if l == nil {
		return slog.Default()
	}
	return l
}

// diagWarn logs an ill-advised-operation warning.
func diagWarn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

// diagInfo logs an informational notice.
func diagInfo(msg string, args ...any) {
	logger().Info(msg, args...)
}
