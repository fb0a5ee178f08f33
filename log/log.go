// Package log defines the leveled logger used across seqmatch.
//
// By default messages go through log/slog to stderr at Warn level. Callers may
// replace the logger with SetLogger or change the level with SetLevel.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Logger is the logging interface used by the engines and clients.
type Logger interface {
	Errorf(format string, args ...any)
	Error(args ...any)
	Warnf(format string, args ...any)
	Warn(args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
	Debugf(format string, args ...any)
	Debug(args ...any)
}

var (
	mu     sync.RWMutex
	level  = new(slog.LevelVar)
	logger Logger
)

func init() {
	level.Set(slog.LevelWarn)
	logger = NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// SetLogger overwrites the default logger with a user specified one.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetLevel changes the level of the default slog-backed logger.
// It has no effect on loggers installed with SetLogger.
func SetLevel(l slog.Level) { level.Set(l) }

func current() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Errorf is the static formatted error logging function.
func Errorf(format string, args ...any) { current().Errorf(format, args...) }

// Warnf is the static formatted warning logging function.
func Warnf(format string, args ...any) { current().Warnf(format, args...) }

// Infof is the static formatted info logging function.
func Infof(format string, args ...any) { current().Infof(format, args...) }

// Debugf is the static formatted debug logging function.
func Debugf(format string, args ...any) { current().Debugf(format, args...) }

// Error is the static error logging function.
func Error(args ...any) { current().Error(args...) }

// Warn is the static warning logging function.
func Warn(args ...any) { current().Warn(args...) }

// Info is the static info logging function.
func Info(args ...any) { current().Info(args...) }

// Debug is the static debug logging function.
func Debug(args ...any) { current().Debug(args...) }

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l.
func NewSlogLogger(l *slog.Logger) *SlogLogger { return &SlogLogger{l: l} }

func (s *SlogLogger) log(lvl slog.Level, msg string) {
	if !s.l.Enabled(context.Background(), lvl) {
		return
	}
	s.l.Log(context.Background(), lvl, msg)
}

// Errorf logs at error level.
func (s *SlogLogger) Errorf(format string, args ...any) {
	s.log(slog.LevelError, fmt.Sprintf(format, args...))
}

// Error logs at error level.
func (s *SlogLogger) Error(args ...any) { s.log(slog.LevelError, fmt.Sprint(args...)) }

// Warnf logs at warning level.
func (s *SlogLogger) Warnf(format string, args ...any) {
	s.log(slog.LevelWarn, fmt.Sprintf(format, args...))
}

// Warn logs at warning level.
func (s *SlogLogger) Warn(args ...any) { s.log(slog.LevelWarn, fmt.Sprint(args...)) }

// Infof logs at info level.
func (s *SlogLogger) Infof(format string, args ...any) {
	s.log(slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Info logs at info level.
func (s *SlogLogger) Info(args ...any) { s.log(slog.LevelInfo, fmt.Sprint(args...)) }

// Debugf logs at debug level.
func (s *SlogLogger) Debugf(format string, args ...any) {
	s.log(slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func (s *SlogLogger) Debug(args ...any) { s.log(slog.LevelDebug, fmt.Sprint(args...)) }
