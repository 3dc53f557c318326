package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared zap logger at the given level ("debug", "info", "warn",
// "error"). Development mode switches to the console encoder with caller info.
func New(level string, development bool) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Level resolves the CLI flags into a zap level name; --debug wins over --log-level.
func Level(debug bool, level string) string {
	if debug {
		return "debug"
	}
	if level == "" {
		return "info"
	}
	return level
}
