package exifwalk

import "github.com/sirupsen/logrus"

// logEntry is a thin, nil-safe wrapper around *logrus.Entry used internally
// so every call site can log unconditionally without checking for a nil
// *logrus.Entry. Logging is purely observational: it
// never influences control flow.
type logEntry struct {
	e *logrus.Entry
}

func newLogEntry(e *logrus.Entry) logEntry {
	return logEntry{e: e}
}

func (l logEntry) debugf(format string, args ...any) {
	if l.e != nil {
		l.e.Debugf(format, args...)
	}
}

func (l logEntry) warnf(format string, args ...any) {
	if l.e != nil {
		l.e.Warnf(format, args...)
	}
}
