//go:build !fibernologs

package fiber

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance. It uses a no-op logger by
// default; set one with SetLogger to see diagnostics from failed contract
// checks (only emitted when built with fiberasserts).
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. Call it before any Callstack
// is started.
func SetLogger(l *zap.Logger) {
	logger = l
}

func logAssertFailure(format string, args ...any) {
	Logger().Sugar().Errorf("assert failed: "+format, args...)
}
