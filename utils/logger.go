package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger. It defaults to a no-op so
// package tests never have to initialize it.
var Logger *zap.SugaredLogger = zap.NewNop().Sugar()

// InitLogger builds the real logger. Level falls back to info on unknown
// input.
func InitLogger(level string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger.Sugar()
	return nil
}
