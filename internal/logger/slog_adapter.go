package logger

import (
	"io"
	"log/slog"
)

// slogAdapter is a concrete implementation of AppLogger using the standard slog library.
type slogAdapter struct {
	adaptee *slog.Logger
}

// NewSlogAdapter creates a new AppLogger that wraps the given *slog.Logger.
func NewSlogAdapter(slogLogger *slog.Logger) AppLogger {
	if slogLogger == nil {
		slogLogger = slog.Default()
	}
	return &slogAdapter{adaptee: slogLogger}
}

// NewNopLogger returns an AppLogger that discards everything. Tests and library callers use it.
func NewNopLogger() AppLogger {
	return NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *slogAdapter) Debug(msg string, args ...any) {
	s.adaptee.Debug(msg, args...)
}

func (s *slogAdapter) Info(msg string, args ...any) {
	s.adaptee.Info(msg, args...)
}

func (s *slogAdapter) Warn(msg string, args ...any) {
	s.adaptee.Warn(msg, args...)
}

func (s *slogAdapter) Error(msg string, args ...any) {
	s.adaptee.Error(msg, args...)
}

// With returns a new AppLogger with the given arguments added to the context.
func (s *slogAdapter) With(args ...any) AppLogger {
	return &slogAdapter{adaptee: s.adaptee.With(args...)}
}

// WithGroup returns a new AppLogger whose later attributes are grouped under name.
func (s *slogAdapter) WithGroup(name string) AppLogger {
	return &slogAdapter{adaptee: s.adaptee.WithGroup(name)}
}
