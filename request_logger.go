package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger]. The same logger
// receives the underlying resty client's warnings.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// SlogLogger adapts a [slog.Logger] to [RequestLogger]. A nil Logger falls
// back to [slog.Default].
type SlogLogger struct {
	Logger *slog.Logger
}

// NewSlogLogger returns a [RequestLogger] writing through l.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{Logger: l}
}

func (l *SlogLogger) Errorf(format string, v ...any) { l.log(slog.LevelError, format, v...) }
func (l *SlogLogger) Warnf(format string, v ...any)  { l.log(slog.LevelWarn, format, v...) }
func (l *SlogLogger) Debugf(format string, v ...any) { l.log(slog.LevelDebug, format, v...) }

func (l *SlogLogger) log(level slog.Level, format string, v ...any) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, v...), "\n")
	logger.Log(ctx, level, msg, "component", "forwardemail")
}
