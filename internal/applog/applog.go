// Package applog is the component logger shared by the edgetrack binaries.
// Lines look like
//
//	2026-02-10T14:03:11Z [INFO] tracker: frame 120, 4 segments
package applog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes leveled lines tagged with a component name.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// WriterLogger writes to w. It is safe for concurrent use.
type WriterLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func New(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w, now: time.Now}
}

func (l *WriterLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l *WriterLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l *WriterLogger) write(level, component, format string, args ...interface{}) {
	line := l.now().UTC().Format(time.RFC3339) + " [" + level + "] " + component + ": " +
		fmt.Sprintf(format, args...) + "\n"
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

// OpenFile returns a logger appending to path, and the file to close on
// exit.
func OpenFile(path string) (*WriterLogger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return New(f), f, nil
}
