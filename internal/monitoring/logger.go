package monitoring

import (
	"io"
	"log"
	"os"
	"sync"
)

// Logger is a levelled wrapper around the standard logger. It is safe for
// use from several goroutines, and a nil *Logger discards everything.
type Logger struct {
	*log.Logger
	mu    sync.Mutex
	debug bool
}

// NewLogger returns a Logger writing to w. Debug lines are only emitted
// when debug is true.
func NewLogger(w io.Writer, debug bool) *Logger {
	return &Logger{
		Logger: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		debug:  debug,
	}
}

// Discard returns a Logger that drops every line.
func Discard() *Logger {
	return NewLogger(io.Discard, false)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.output("[INFO] ", format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l == nil || !l.debug {
		return
	}
	l.output("[DEBUG] ", format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.output("[ERROR] ", format, v...)
}

// DebugEnabled reports whether Debug lines are written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debug
}

func (l *Logger) output(level, format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Printf(level+format, v...)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewLogger(os.Stdout, false)
)

// Default returns the process-wide logger used when callers do not pass one.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide logger. Passing nil installs a no-op
// logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = Discard()
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}
