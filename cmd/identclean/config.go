package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/identkit/pkg/config"
	"github.com/dmitrymomot/identkit/pkg/logger"
)

const envPrefix = "IDENTCLEAN_"

var (
	// ErrInvalidLogFormat is returned for log formats other than text and json
	ErrInvalidLogFormat = errors.New("log format must be text or json")

	// ErrInvalidIdentifier is returned by check when at least one input is not a valid identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// cliConfig is read from IDENTCLEAN_* variables and an optional .env file.
type cliConfig struct {
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string   `env:"LOG_FORMAT" envDefault:"text"`
	CSSFilter     []string `env:"CSS_FILTER" envSeparator:";"`
	CSSFilterFile string   `env:"CSS_FILTER_FILE"`
}

func loadConfig() (cliConfig, error) {
	var cfg cliConfig
	if err := config.LoadWithPrefix(&cfg, envPrefix); err != nil {
		return cliConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg cliConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("identclean")),
	), nil
}
