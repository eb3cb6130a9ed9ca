package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/config"
)

// diffContextLines is the number of unchanged lines shown around a change.
const diffContextLines = 2

func roundtripCmd(state *app) *cobra.Command {
	var from string

	var cookTemplates bool

	cmd := &cobra.Command{
		Use:   "roundtrip <file|->",
		Short: "Convert a document there and back and compare",
		Long: `Convert a document to the other taxonomy and back, then compare the result
with the input. Differences are printed as a line diff of the indented JSON and
the command exits with status 2.

Examples:
  astbridge roundtrip program.json
  astbridge roundtrip --from shift - < script.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := bridge.ParseTaxonomy(from)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("cook") {
				cookTemplates = state.cfg.Convert.CookTemplates
			}

			return runRoundTrip(cmd.Context(), state, args[0], taxonomy, cookTemplates, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source taxonomy (estree, shift; default: detect)")
	cmd.Flags().BoolVar(&cookTemplates, "cook", config.DefaultCookTemplates,
		"compute template cooked values when converting to ESTree")

	return cmd
}

func runRoundTrip(
	ctx context.Context, state *app, input string, from bridge.Taxonomy, cookTemplates bool, stdin io.Reader, out io.Writer,
) error {
	data, label, err := readInput(input, stdin)
	if err != nil {
		return err
	}

	doc, err := bridge.Decode(data, from)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	result, err := state.translator(cookTemplates).RoundTrip(ctx, doc)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	path := fmt.Sprintf("%s -> %s -> %s", doc.Taxonomy, doc.Taxonomy.Other(), doc.Taxonomy)

	if result.Equal() {
		if !state.quiet {
			color.New(color.FgGreen).Fprintf(out, "Round trip OK (%s): %s\n", path, sanitizeForTerminal(label))
		}

		return nil
	}

	before, err := bridge.Render(result.Original, config.FormatJSON, config.DefaultOutputIndent)
	if err != nil {
		return err
	}

	after, err := bridge.Render(result.Returned, config.FormatJSON, config.DefaultOutputIndent)
	if err != nil {
		return err
	}

	color.New(color.FgRed).Fprintf(out, "Round trip changed the document (%s): %s\n", path, sanitizeForTerminal(label))
	printLineDiff(out, bridge.LineDiff(string(before), string(after)))

	return fmt.Errorf("%w: %s", ErrRoundTripMismatch, label)
}

// printLineDiff prints changed lines with a little unchanged context.
func printLineDiff(out io.Writer, diffs []diffmatchpatch.Diff) {
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	skipped := color.New(color.FgCyan)

	for i, d := range diffs {
		lines := strings.SplitAfter(d.Text, "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				removed.Fprintf(out, "- %s", line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				added.Fprintf(out, "+ %s", line)
			}
		case diffmatchpatch.DiffEqual:
			printContext(out, skipped, lines, i > 0, i < len(diffs)-1)
		}
	}
}

func printContext(out io.Writer, skipped *color.Color, lines []string, afterChange, beforeChange bool) {
	head, tail := 0, 0
	if afterChange {
		head = diffContextLines
	}

	if beforeChange {
		tail = diffContextLines
	}

	if head+tail >= len(lines) {
		for _, line := range lines {
			fmt.Fprintf(out, "  %s", line)
		}

		return
	}

	for _, line := range lines[:head] {
		fmt.Fprintf(out, "  %s", line)
	}

	skipped.Fprintf(out, "@@ %d unchanged lines @@\n", len(lines)-head-tail)

	for _, line := range lines[len(lines)-tail:] {
		fmt.Fprintf(out, "  %s", line)
	}
}
