// Package logger builds the process logger.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar selects the development encoder when set to "dev".
const EnvVar = "FINANCE_ENV"

// Options controls logger construction.
type Options struct {
	// Quiet raises the level to warn.
	Quiet bool
	// Dev forces the development encoder regardless of EnvVar.
	Dev bool
}

// New returns a sugared zap logger writing to stderr.
func New(opts Options) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if opts.Dev || strings.EqualFold(os.Getenv(EnvVar), "dev") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
		cfg.InitialFields = map[string]interface{}{EnvVar: os.Getenv(EnvVar)}
	}
	if opts.Quiet {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return l.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
