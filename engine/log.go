package engine

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var defaultLogger atomic.Pointer[logrus.FieldLogger]

// SetLogger replaces the logger used for codec diagnostics and as the
// default for new decks and boards. Passing nil restores the logrus
// standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		defaultLogger.Store(nil)
		return
	}
	defaultLogger.Store(&l)
}

func pkgLogger() logrus.FieldLogger {
	if p := defaultLogger.Load(); p != nil {
		return *p
	}
	return logrus.StandardLogger()
}
