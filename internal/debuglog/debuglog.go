// Package debuglog is a small append-only file logger for tracing UI and
// engine activity while the terminal is taken over by the TUI.
package debuglog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped lines to a writer.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	c   io.Closer
}

var (
	globalMu sync.Mutex
	global   *Logger
)

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Open creates or appends to the log file at path.
func Open(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	l := &Logger{out: file, c: file}
	l.Logf("=== timebox session started at %s ===", time.Now().Format("2006-01-02 15:04:05"))
	return l, nil
}

// Log writes a message to the debug log
func (l *Logger) Log(message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil {
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", time.Now().Format("15:04:05.000"), message)
}

// Logf writes a formatted message to the debug log
func (l *Logger) Logf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = nil
	if l.c != nil {
		err := l.c.Close()
		l.c = nil
		return err
	}
	return nil
}

// Init opens path and installs it as the package logger. An empty path
// leaves logging disabled.
func Init(path string) error {
	if path == "" {
		return nil
	}
	l, err := Open(path)
	if err != nil {
		return err
	}
	SetDefault(l)
	return nil
}

// SetDefault replaces the package logger, closing the previous one.
func SetDefault(l *Logger) {
	globalMu.Lock()
	prev := global
	global = l
	globalMu.Unlock()

	if prev != nil && prev != l {
		prev.Close()
	}
}

// Logf writes to the package logger when one is installed
func Logf(format string, args ...interface{}) {
	globalMu.Lock()
	l := global
	globalMu.Unlock()
	l.Logf(format, args...)
}

// Close closes the package logger
func Close() {
	SetDefault(nil)
}
