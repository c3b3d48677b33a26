// Package logging provides structured logging for mkmagnet on top of
// log/slog. All log output goes to the writer the caller supplies
// (stderr in the CLI) so stdout stays reserved for the magnet URI.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled structured logger with an optional component field.
type Logger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
}

// New creates a logger writing text records to w at the given level.
func New(w io.Writer, level LogLevel) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel(level),
	})

	return &Logger{
		logger: slog.New(handler),
		level:  level,
	}
}

// WithComponent returns a logger that tags every record with a component
// field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		logger:    l.logger,
		level:     l.level,
		component: component,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...any) {
	if l.level > LevelDebug {
		return
	}
	l.log(slog.LevelDebug, nil, msg, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...any) {
	if l.level > LevelInfo {
		return
	}
	l.log(slog.LevelInfo, nil, msg, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(err error, msg string, fields ...any) {
	if l.level > LevelWarn {
		return
	}
	l.log(slog.LevelWarn, err, msg, fields...)
}

// Error logs an error message
func (l *Logger) Error(err error, msg string, fields ...any) {
	l.log(slog.LevelError, err, msg, fields...)
}

func (l *Logger) log(level slog.Level, err error, msg string, fields ...any) {
	attrs := make([]slog.Attr, 0, len(fields)/2+2)

	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			attrs = append(attrs, slog.Any(key, fields[i+1]))
		}
	}

	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(attrs...)

	l.logger.Handler().Handle(context.Background(), record)
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
