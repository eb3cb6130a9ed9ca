package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
)

func validateCmd(state *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate a syntax tree document",
		Long: `Validate a document: the root is checked against the JSON Schema of its
taxonomy, then the whole tree is decoded to find unknown node kinds and nodes
in positions that do not accept them. Invalid documents exit with status 2.

Examples:
  astbridge validate program.json
  astbridge validate --from shift - < script.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := bridge.ParseTaxonomy(from)
			if err != nil {
				return err
			}

			return runValidate(args[0], taxonomy, state.quiet, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "taxonomy to validate against (estree, shift; default: detect)")

	return cmd
}

func runValidate(input string, from bridge.Taxonomy, quiet bool, stdin io.Reader, out io.Writer) error {
	data, label, err := readInput(input, stdin)
	if err != nil {
		return err
	}

	label = sanitizeForTerminal(label)

	report, err := bridge.Validate(data, from)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	if report.Valid() {
		if !quiet {
			color.New(color.FgGreen).Fprintf(out, "%s document is valid (%s)\n", report.Taxonomy, label)
			fmt.Fprintf(out, "  Nodes: %d\n", report.Nodes)
		}

		return nil
	}

	color.New(color.FgRed).Fprintf(out, "%s document is invalid (%s)\n", report.Taxonomy, label)

	if len(report.Problems) > 0 {
		fmt.Fprintf(out, "\nErrors:\n")

		for _, problem := range report.Problems {
			color.New(color.FgRed).Fprintf(out, "  - %s\n", sanitizeForTerminal(problem))
		}
	}

	if len(report.Unknown) > 0 {
		fmt.Fprintf(out, "\nUnknown node kinds:\n")

		for _, kind := range report.Unknown {
			color.New(color.FgYellow).Fprintf(out, "  - %s", sanitizeForTerminal(kind))

			if similar := report.Suggestions[kind]; len(similar) > 0 {
				fmt.Fprintf(out, " (did you mean %s?)", strings.Join(similar, ", "))
			}

			fmt.Fprintln(out)
		}
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, label)
}
