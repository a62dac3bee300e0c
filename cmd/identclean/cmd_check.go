package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/identkit/pkg/logger"
	"github.com/dmitrymomot/identkit/pkg/sanitizer"
)

var validators = map[string]func(string) bool{
	"css": sanitizer.IsValidCSSIdentifier,
	"id":  sanitizer.IsValidHTMLID,
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check css|id [text...]",
		Short: "Report whether each input already is a valid identifier",
		Long: "Prints valid or invalid followed by the input, one line each, and fails if any input is invalid.\n\n" +
			"Inputs starting with a hyphen must follow a \"--\" separator.",
		Example: "  identclean check css my-class _abc\n" +
			"  identclean check id -- -intro",
		Args:      cobra.MatchAll(cobra.MinimumNArgs(1), validKind),
		ValidArgs: []string{"css", "id"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			valid := validators[kind]

			inputs, err := readInputs(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, in := range inputs {
				status := "valid"
				if !valid(in) {
					status = "invalid"
					invalid++
					a.log.Debug("invalid identifier", logger.Kind(kind), logger.Input(in))
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", status, in); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d %s inputs", ErrInvalidIdentifier, invalid, len(inputs), kind)
			}
			return nil
		},
	}
}

func validKind(cmd *cobra.Command, args []string) error {
	if _, ok := validators[args[0]]; !ok {
		return fmt.Errorf("unknown identifier kind %q: must be css or id", args[0])
	}
	return nil
}
