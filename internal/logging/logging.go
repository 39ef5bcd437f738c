// Package logging builds the application's zap logger. The terminal is
// owned by the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/neurondoctrine/internal/config"
)

// New returns a JSON file logger tagged with a per-run session id, or a
// no-op logger when cfg.Path is empty. verbose forces debug level.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.Level = level
	zc.Sampling = nil
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}
