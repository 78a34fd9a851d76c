// Package logutil provides the shared zap logger for the tool.
package logutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// InitLogger builds the process logger at the given level. Output goes to
// stderr so the report on stdout stays clean.
func InitLogger(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build()
	if err != nil {
		built = zap.NewNop()
	}
	logger = built
}

// GetLogger returns the process logger, initialising a default one if
// InitLogger was never called.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitLogger("info")
	}
	return logger
}
