// Package logging builds the zap loggers used across aocrunner.
// The level and format come from config.LoggingConfig; nothing here reads the
// environment, so callers decide where the level comes from.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aocrunner/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot  Category = "boot"  // CLI startup, config resolution
	CategoryFetch Category = "fetch" // Input cache lookups and downloads
	CategoryParse Category = "parse" // Puzzle input parsing
	CategorySolve Category = "solve" // Part 1 / part 2 computation
)

// ParseLevel maps a config level string onto a zap level.
// Unknown strings fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger writing to stderr.
// "json" selects zap's production encoder, anything else the console encoder.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.DisableStacktrace = true
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns a child logger named after the category.
// A nil parent yields a no-op logger so components can be built without one.
func For(parent *zap.Logger, category Category) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(string(category))
}
