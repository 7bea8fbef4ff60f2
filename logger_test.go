package quex

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// memoryLogger keeps every formatted line prefixed with its level.
type memoryLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *memoryLogger) add(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+" "+fmt.Sprintf(format, args...))
}

func (l *memoryLogger) Debug(format string, args ...interface{}) { l.add("DEBUG", format, args...) }
func (l *memoryLogger) Info(format string, args ...interface{})  { l.add("INFO", format, args...) }
func (l *memoryLogger) Warn(format string, args ...interface{})  { l.add("WARN", format, args...) }
func (l *memoryLogger) Error(format string, args ...interface{}) { l.add("ERROR", format, args...) }

// lines returns the entries written by enhancers, in order.
func (l *memoryLogger) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if strings.Contains(e, "Enhancer:") {
			out = append(out, e)
		}
	}
	return out
}

func (l *memoryLogger) has(prefix string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	logger := NewDefaultLogger()
	assert.NotPanics(t, func() {
		logger.Debug("debug %d", 1)
		logger.Info("info %d", 2)
		logger.Warn("warn %d", 3)
		logger.Error("error %d", 4)
	})
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger := NewSlogLogger(base)

	logger.Debug("hidden %s", "debug")
	logger.Info("task %d done", 3)
	logger.Warn("slow")
	logger.Error("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `level=INFO msg="task 3 done" component=quex`)
	assert.Contains(t, out, "level=WARN msg=slow")
	assert.Contains(t, out, `level=ERROR msg="failed: boom"`)
}

func TestSlogLoggerNilFallsBack(t *testing.T) {
	assert.NotNil(t, NewSlogLogger(nil))
}
