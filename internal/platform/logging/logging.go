package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Output goes to stderr so command output on
// stdout stays parseable.
func New(verbose bool) (*zap.Logger, error) {
	return build("stderr", verbose)
}

// NewFile builds a logger that writes to path, for the TUI where stderr is
// owned by the terminal renderer. It filters at the same level as New.
func NewFile(path string, verbose bool) (*zap.Logger, error) {
	return build(path, verbose)
}

// Level is warn, or debug when verbose.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

func build(output string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}
	cfg.Level = zap.NewAtomicLevelAt(Level(verbose))
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
