// Package logger holds the process wide structured logger. Until
// Initialize is called it discards everything, so library code can log
// without checking whether anybody is listening.
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Config says how to log. An empty Level means "info".
type Config struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// Initialize replaces the no-op logger. Human readable output goes to
// stderr so that it never mixes with records written to stdout.
func Initialize(cfg Config) error {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	JSONOutput = cfg.JSON

	var zapLogger *zap.Logger
	if cfg.JSON {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		if zapLogger, err = config.Build(); err != nil {
			return errors.Wrap(err, "building json logger")
		}
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.TimeKey = ""
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encCfg),
				zapcore.AddSync(os.Stderr),
				lvl,
			),
		)
	}
	Logger = zapLogger.Sugar()
	return nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zap.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return lvl, errors.WithHint(errors.Wrapf(err, "log level %q", s),
			"use one of debug, info, warn, error")
	}
	return lvl, nil
}

// Desugared gives the plain logger for code on a hot path.
func Desugared() *zap.Logger { return Logger.Desugar() }
