// Package corelog provides the small logging seam the core uses to report
// progress and non-fatal invariant softenings through a plain interface any
// host logger can satisfy.
package corelog

import "log"

// Logger receives progress and diagnostic messages from the core. A nil
// Logger is valid and silent (see OrNop); the core never requires one.
type Logger interface {
	Progressf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	L *log.Logger
}

// NewStdLogger wraps l, or log.Default() if l is nil.
func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{L: l}
}

func (s *StdLogger) Progressf(format string, args ...interface{}) {
	s.L.Printf("PROG "+format, args...)
}

func (s *StdLogger) Warningf(format string, args ...interface{}) {
	s.L.Printf("WARN "+format, args...)
}

func (s *StdLogger) Errorf(format string, args ...interface{}) {
	s.L.Printf("ERR "+format, args...)
}

// nopLogger discards everything. Used when a nil Logger is supplied so
// call sites never need a nil check.
type nopLogger struct{}

func (nopLogger) Progressf(string, ...interface{}) {}
func (nopLogger) Warningf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{})    {}

// OrNop returns l, or a silent no-op Logger if l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}
