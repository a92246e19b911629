// Package logger provides the structured logging interface used across the
// lead-qualification library.
package logger

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level.
	Info(msg string, fields ...Field)
	// Warn logs a message at warning level.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level.
	Error(msg string, fields ...Field)
	// With returns a new logger with the given fields attached.
	With(fields ...Field) Logger
	// Sync flushes any buffered log entries.
	Sync() error
}

// Field is a type alias for zap.Field.
// It represents a key-value pair that can be attached to a log entry.
type Field = zap.Field

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error).
	Level string `env:"LOG_LEVEL" yaml:"level"`
	// Development enables development mode with no sampling.
	Development bool `yaml:"development"`
	// OutputPaths is a list of URLs or file paths to write logging output to.
	OutputPaths []string `yaml:"output_paths"`
}

type zapLogger struct {
	logger *zap.Logger
}

// New creates a new Logger instance with the given configuration.
func New(cfg Config) (Logger, error) {
	level := parseLevel(cfg.Level)

	// Always use JSON format for consistency across all environments
	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}
	if cfg.Development {
		zapCfg.Sampling = nil
	}

	z, err := zapCfg.Build(
		zap.AddCallerSkip(1), // Skip the wrapper function
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &zapLogger{logger: z}, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug logs a message at debug level.
func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, fields...)
}

// Info logs a message at info level.
func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, fields...)
}

// Warn logs a message at warning level.
func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, fields...)
}

// Error logs a message at error level.
func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, fields...)
}

// With returns a new logger with the given fields attached.
func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(fields...)}
}

// Sync flushes any buffered log entries.
func (l *zapLogger) Sync() error {
	return l.logger.Sync()
}

// String creates a string field.
func String(key, val string) Field {
	return zap.String(key, val)
}

// Int creates an int field.
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 creates an int64 field.
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Float64 creates a float64 field.
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool creates a bool field.
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Duration creates a duration field.
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Error creates an error field with the key "error".
func Error(err error) Field {
	return zap.Error(err)
}

// Any creates a field that can hold any value.
func Any(key string, val any) Field {
	return zap.Any(key, val)
}

// Strings creates a string slice field.
func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}
