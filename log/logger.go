// Package logger provides prefixed, colored component loggers backed by zap.
package logger

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const colorReset = "\033[0m"

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes console lines tagged with a component prefix.
type Logger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
}

// New creates a logger that tags every line with prefix, painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + color + name + colorReset + "]")
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return &Logger{
		zl:    zap.New(core).Named(prefix),
		level: level,
	}, nil
}

// SetLevel changes the minimum level; text is one of debug, info, warn, error.
func (l *Logger) SetLevel(text string) error {
	return l.level.UnmarshalText([]byte(text))
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	l.zl.Debug(msg)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.zl.Info(msg)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string) {
	l.zl.Warn(msg)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.zl.Error(msg)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}
