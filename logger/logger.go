// Package logger provides the colored, prefixed logger the application
// components write to.
package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

const colorReset = "\033[0m"

// Logger writes leveled, prefixed log lines to a single writer.
type Logger struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
}

// New creates a Logger that tags every line with the given prefix and
// ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger: empty prefix")
	}
	if out == nil {
		return nil, errors.New("logger: nil writer")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006/01/02 15:04:05")
	fmt.Fprintf(l.out, "%s[%s]%s %s [%s] %s\n", l.color, l.prefix, colorReset, ts, level, msg)
}
