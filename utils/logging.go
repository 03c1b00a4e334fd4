// Package utils provides logging and token counting shared by the promptgen packages.
package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	SetLevel(level LogLevel)
}

type DefaultLogger struct {
	logger *slog.Logger
	level  LogLevel
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to stderr.
func NewLogger(level LogLevel) *DefaultLogger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo returns a text logger writing to w.
func NewLoggerTo(w io.Writer, level LogLevel) *DefaultLogger {
	opts := &slog.HandlerOptions{
		Level: slogLevel(level),
	}
	return &DefaultLogger{
		logger: slog.New(slog.NewTextHandler(w, opts)),
		level:  level,
	}
}

func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *DefaultLogger) Debug(msg string, keysAndValues ...any) {
	if l.level >= LogLevelDebug {
		l.logger.Debug(msg, keysAndValues...)
	}
}

func (l *DefaultLogger) Info(msg string, keysAndValues ...any) {
	if l.level >= LogLevelInfo {
		l.logger.Info(msg, keysAndValues...)
	}
}

func (l *DefaultLogger) Warn(msg string, keysAndValues ...any) {
	if l.level >= LogLevelWarn {
		l.logger.Warn(msg, keysAndValues...)
	}
}

func (l *DefaultLogger) Error(msg string, keysAndValues ...any) {
	if l.level >= LogLevelError {
		l.logger.Error(msg, keysAndValues...)
	}
}

// NopLogger discards everything.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) SetLevel(LogLevel)    {}

// fieldLogger prepends a fixed set of key-value pairs to every call.
type fieldLogger struct {
	parent Logger
	fields []any
}

// WithFields binds keysAndValues to every message logged through the returned Logger.
// SetLevel on the result changes the parent's level.
func WithFields(l Logger, keysAndValues ...any) Logger {
	if l == nil {
		l = NewNopLogger()
	}
	if fl, ok := l.(*fieldLogger); ok {
		fields := make([]any, 0, len(fl.fields)+len(keysAndValues))
		fields = append(fields, fl.fields...)
		fields = append(fields, keysAndValues...)
		return &fieldLogger{parent: fl.parent, fields: fields}
	}
	return &fieldLogger{parent: l, fields: keysAndValues}
}

func (f *fieldLogger) merge(keysAndValues []any) []any {
	out := make([]any, 0, len(f.fields)+len(keysAndValues))
	out = append(out, f.fields...)
	return append(out, keysAndValues...)
}

func (f *fieldLogger) Debug(msg string, keysAndValues ...any) {
	f.parent.Debug(msg, f.merge(keysAndValues)...)
}

func (f *fieldLogger) Info(msg string, keysAndValues ...any) {
	f.parent.Info(msg, f.merge(keysAndValues)...)
}

func (f *fieldLogger) Warn(msg string, keysAndValues ...any) {
	f.parent.Warn(msg, f.merge(keysAndValues)...)
}

func (f *fieldLogger) Error(msg string, keysAndValues ...any) {
	f.parent.Error(msg, f.merge(keysAndValues)...)
}

func (f *fieldLogger) SetLevel(level LogLevel) {
	f.parent.SetLevel(level)
}

func (l LogLevel) String() string {
	names := [...]string{"OFF", "ERROR", "WARN", "INFO", "DEBUG"}
	if l < 0 || int(l) >= len(names) {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return names[l]
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "OFF":
		*l = LogLevelOff
	case "ERROR":
		*l = LogLevelError
	case "WARN":
		*l = LogLevelWarn
	case "INFO":
		*l = LogLevelInfo
	case "DEBUG":
		*l = LogLevelDebug
	default:
		return fmt.Errorf("invalid log level: %s", string(text))
	}
	return nil
}
