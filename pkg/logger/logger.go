package logger

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type zapLogger struct {
	z *zap.Logger
}

// NewWriterLogger builds a zap-backed logger that writes console lines to w.
// Debug lines are only emitted when verbose is set.
func NewWriterLogger(w io.Writer, verbose bool) Logger {
	if w == nil {
		return NopLogger{}
	}
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zapLogger{z: zap.New(core)}
}

// NewZapLogger adapts an existing zap logger.
func NewZapLogger(z *zap.Logger) Logger {
	if z == nil {
		return NopLogger{}
	}
	return zapLogger{z: z}
}

func (l zapLogger) Info(msg string, obj any)  { l.z.Info(msg, fields(obj)...) }
func (l zapLogger) Warn(msg string, obj any)  { l.z.Warn(msg, fields(obj)...) }
func (l zapLogger) Debug(msg string, obj any) { l.z.Debug(msg, fields(obj)...) }
func (l zapLogger) Error(msg string, obj any) { l.z.Error(msg, fields(obj)...) }

// fields flattens a map payload into sorted zap fields; anything else is logged as obj.
func fields(obj any) []zap.Field {
	switch v := obj.(type) {
	case nil:
		return nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			out = append(out, zap.Any(k, v[k]))
		}
		return out
	case error:
		return []zap.Field{zap.Error(v)}
	default:
		return []zap.Field{zap.Any("obj", v)}
	}
}

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Debugf is a compatibility helper for format-style debug logging.
func Debugf(enabled bool, logger Logger, format string, args ...any) {
	Debug(enabled, logger, fmt.Sprintf(format, args...), nil)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}
