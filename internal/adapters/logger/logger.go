// Package logger implements the logging adapter using log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog. Raw build output bypasses
// slog so captured process streams come out verbatim.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	out    io.Writer
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		out:    w,
	}
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
	l.out = w
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

// Output writes verbatim build output without log decoration, terminated
// by a newline when the message doesn't carry one.
func (l *Logger) Output(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		_, _ = fmt.Fprint(l.out, msg)
		return
	}
	_, _ = fmt.Fprintln(l.out, msg)
}
