//go:build fibernologs

package fiber

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance. Under fibernologs no
// diagnostic is ever written through it, but it is kept available so code
// built either way links against the same API.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger, which Logger then returns.
// Under fibernologs the package itself never writes through it.
func SetLogger(l *zap.Logger) {
	logger = l
}

// logAssertFailure is compiled out entirely under fibernologs, so a failed
// assertion never reaches the logger at all.
func logAssertFailure(format string, args ...any) {}
