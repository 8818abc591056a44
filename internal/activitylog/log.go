package activitylog

import (
	"fmt"
	"os"
	"sync"
)

// Log is an append-only text log backed by a single file. Appends are
// serialized so concurrent tool calls cannot interleave lines.
type Log struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Path() string { return l.path }

// EnsureExists creates the file empty when absent.
func (l *Log) EnsureExists() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create activity log %s: %w", l.path, err)
	}
	return f.Close()
}

// Append writes one line. The file handle is opened and released per call.
func (l *Log) Append(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open activity log %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append activity log %s: %w", l.path, err)
	}
	return nil
}

// Read returns the full log contents.
func (l *Log) Read() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := os.ReadFile(l.path)
	if err != nil {
		return "", fmt.Errorf("read activity log %s: %w", l.path, err)
	}
	return string(raw), nil
}
