// Package logging adapts zap to the runtime.Logger interface so the engine
// logs the same way inside the Nakama plugin and in the CLI.
package logging

import (
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar  *zap.SugaredLogger
	fields map[string]interface{}
}

// NewZap builds a console logger at the given level ("debug", "info", "warn", "error").
func NewZap(level string) (runtime.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return FromZap(logger), nil
}

// FromZap wraps an existing zap logger.
func FromZap(logger *zap.Logger) runtime.Logger {
	return &zapLogger{sugar: logger.Sugar(), fields: map[string]interface{}{}}
}

// Sync flushes a logger built by NewZap or FromZap. Other loggers are ignored.
func Sync(logger runtime.Logger) {
	if zl, ok := logger.(*zapLogger); ok {
		_ = zl.sugar.Sync()
	}
}

func (l *zapLogger) Debug(format string, v ...interface{}) { l.sugar.Debugf(format, v...) }
func (l *zapLogger) Info(format string, v ...interface{})  { l.sugar.Infof(format, v...) }
func (l *zapLogger) Warn(format string, v ...interface{})  { l.sugar.Warnf(format, v...) }
func (l *zapLogger) Error(format string, v ...interface{}) { l.sugar.Errorf(format, v...) }

func (l *zapLogger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *zapLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	args := make([]interface{}, 0, 2*len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
		args = append(args, k, v)
	}
	return &zapLogger{sugar: l.sugar.With(args...), fields: merged}
}

func (l *zapLogger) Fields() map[string]interface{} {
	return l.fields
}

type nopLogger struct{}

// Nop discards everything.
func Nop() runtime.Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) WithField(string, interface{}) runtime.Logger {
	return nopLogger{}
}
func (nopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return nopLogger{}
}
func (nopLogger) Fields() map[string]interface{} {
	return nil
}
