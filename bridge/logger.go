package bridge

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// Logger returns the bridge logger. It is a no-op logger until [SetLogger]
// installs one.
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	return l
}

// SetLogger installs l, named with [Tag], as the bridge logger. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	} else {
		l = l.Named(Tag)
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
