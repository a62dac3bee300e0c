package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/identkit/pkg/config"
	"github.com/dmitrymomot/identkit/pkg/sanitizer"
)

// app carries state shared by sub-commands once the root pre-run has finished.
type app struct {
	cfg cliConfig
	log *slog.Logger
}

// pipeline builds the per-input transform, optionally trimming surrounding whitespace first.
func pipeline(trim bool, clean func(string) string) func(string) string {
	steps := make([]func(string) string, 0, 2)
	if trim {
		steps = append(steps, strings.TrimSpace)
	}
	return sanitizer.Compose(append(steps, clean)...)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		logLevel  string
		logFormat string
		envFiles  []string
	)

	rootCmd := &cobra.Command{
		Use:   "identclean",
		Short: "Turn free-form text into CSS identifiers and HTML ids",
		Long: "identclean cleans each argument, or each line of standard input when no " +
			"arguments are given, and prints one identifier per line.\n\n" +
			"Inputs starting with a hyphen must follow a \"--\" separator, " +
			"e.g. identclean css -- --abc.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "extra .env file to load before reading IDENTCLEAN_* variables, repeatable")

	rootCmd.AddCommand(
		newCSSCmd(a),
		newIDCmd(a),
		newCheckCmd(a),
	)

	return rootCmd
}
