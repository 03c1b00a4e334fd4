package utils

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap SugaredLogger to Logger. Output is JSON.
type ZapLogger struct {
	atom  zap.AtomicLevel
	sugar *zap.SugaredLogger
	level LogLevel
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		// LogLevelOff
		return zapcore.FatalLevel
	}
}

// NewZapLogger builds a production zap logger writing to stderr.
func NewZapLogger(level LogLevel) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &ZapLogger{atom: cfg.Level, sugar: logger.Sugar(), level: level}, nil
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(logger *zap.Logger, level LogLevel) *ZapLogger {
	return &ZapLogger{atom: zap.NewAtomicLevelAt(zapLevel(level)), sugar: logger.Sugar(), level: level}
}

func (z *ZapLogger) SetLevel(level LogLevel) {
	z.level = level
	z.atom.SetLevel(zapLevel(level))
}

func (z *ZapLogger) Debug(msg string, keysAndValues ...any) {
	if z.level >= LogLevelDebug {
		z.sugar.Debugw(msg, keysAndValues...)
	}
}

func (z *ZapLogger) Info(msg string, keysAndValues ...any) {
	if z.level >= LogLevelInfo {
		z.sugar.Infow(msg, keysAndValues...)
	}
}

func (z *ZapLogger) Warn(msg string, keysAndValues ...any) {
	if z.level >= LogLevelWarn {
		z.sugar.Warnw(msg, keysAndValues...)
	}
}

func (z *ZapLogger) Error(msg string, keysAndValues ...any) {
	if z.level >= LogLevelError {
		z.sugar.Errorw(msg, keysAndValues...)
	}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}
