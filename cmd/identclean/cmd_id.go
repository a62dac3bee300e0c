package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/identkit/pkg/logger"
	"github.com/dmitrymomot/identkit/pkg/sanitizer"
)

func newIDCmd(a *app) *cobra.Command {
	var trim bool

	cmd := &cobra.Command{
		Use:   "id [text...]",
		Short: "Print an HTML element id for each input",
		Long: "Maps spaces, underscores and square brackets to hyphens, lower-cases, keeps only " +
			"ASCII letters, digits, hyphens and underscores and collapses hyphen runs.\n\n" +
			"Inputs starting with a hyphen must follow a \"--\" separator.",
		Example: "  identclean id 'Hello World_Test[1]'\n" +
			"  identclean id -- '-- Intro --'",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			clean := pipeline(trim, sanitizer.CleanID)

			out := cmd.OutOrStdout()
			for _, in := range inputs {
				result := clean(in)
				a.log.Debug("cleaned", logger.Kind("id"), logger.Input(in), logger.Output(result))
				if _, err := fmt.Fprintln(out, result); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			a.log.Info("processed inputs", logger.Kind("id"), slog.Int("count", len(inputs)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&trim, "trim", false, "trim surrounding whitespace before cleaning")

	return cmd
}
