package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/identkit/pkg/logger"
	"github.com/dmitrymomot/identkit/pkg/sanitizer"
)

func newCSSCmd(a *app) *cobra.Command {
	var (
		entries   []string
		file      string
		noDefault bool
		trim      bool
	)

	cmd := &cobra.Command{
		Use:   "css [text...]",
		Short: "Print a CSS identifier for each input",
		Long: "Applies the substitution filter (default: space, underscore, slash and [ to -, ] removed), " +
			"keeps double underscores, strips invalid characters, fixes an invalid start and lower-cases.\n\n" +
			"Filter flags replace every IDENTCLEAN_CSS_FILTER* setting. " +
			"Inputs starting with a hyphen must follow a \"--\" separator.",
		Example: "  identclean css 'My Class[Name]'\n" +
			"  identclean css --filter '+=plus' --filter ' =-' 'Objective C++'\n" +
			"  identclean css -- --abc -1abc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("filter-file") || cmd.Flags().Changed("filter") {
				a.cfg.CSSFilterFile = file
				a.cfg.CSSFilter = entries
			}

			filter, err := resolveFilter(a.cfg, noDefault)
			if err != nil {
				return err
			}
			if filter == nil {
				a.log.Debug("using default filter", logger.Rules(len(sanitizer.DefaultCSSFilter())))
			} else {
				a.log.Debug("using custom filter", logger.Rules(len(filter)))
			}

			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			clean := pipeline(trim, sanitizer.CSSIdentifierWith(filter))

			out := cmd.OutOrStdout()
			for _, in := range inputs {
				result := clean(in)
				a.log.Debug("cleaned", logger.Kind("css"), logger.Input(in), logger.Output(result))
				if _, err := fmt.Fprintln(out, result); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			a.log.Info("processed inputs", logger.Kind("css"), slog.Int("count", len(inputs)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&entries, "filter", nil, "replacement rule in old=new form, repeatable, applied in order")
	cmd.Flags().StringVar(&file, "filter-file", "", "YAML mapping of old: new replacement rules")
	cmd.Flags().BoolVar(&noDefault, "no-default", false, "apply no replacement rules when no filter is given")
	cmd.Flags().BoolVar(&trim, "trim", false, "trim surrounding whitespace before cleaning")

	return cmd
}

// resolveFilter builds the filter from the file rules followed by the entry
// rules. A nil result selects the default filter.
func resolveFilter(cfg cliConfig, noDefault bool) (sanitizer.Filter, error) {
	var filter sanitizer.Filter

	if cfg.CSSFilterFile != "" {
		fromFile, err := sanitizer.LoadFilterFile(cfg.CSSFilterFile)
		if err != nil {
			return nil, err
		}
		filter = append(sanitizer.Filter{}, fromFile...)
	}

	if len(cfg.CSSFilter) > 0 {
		fromEntries, err := sanitizer.ParseFilter(cfg.CSSFilter)
		if err != nil {
			return nil, fmt.Errorf("parse filter: %w", err)
		}
		filter = append(filter, fromEntries...)
	}

	if filter == nil && noDefault {
		filter = sanitizer.Filter{}
	}
	return filter, nil
}
