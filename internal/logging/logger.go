// Package logging writes skylark's operational log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Logger appends timestamped lines to the log file.
// A nil *Logger discards everything.
type Logger struct {
	file io.Closer
	std  *log.Logger
}

// New opens (or creates) the log file at path.
func New(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{file: f, std: log.New(f, "", log.LstdFlags)}, nil
}

// NewWriter logs to w. Close is a no-op.
func NewWriter(w io.Writer) *Logger {
	return &Logger{std: log.New(w, "", log.LstdFlags)}
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Print(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
