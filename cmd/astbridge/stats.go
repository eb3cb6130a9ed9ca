package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
)

func statsCmd(state *app) *cobra.Command {
	var from string

	var top int

	cmd := &cobra.Command{
		Use:   "stats <file|->",
		Short: "Show node statistics of a document",
		Long: `Show the size, node count, depth and per-kind node counts of a document.

Examples:
  astbridge stats program.json
  astbridge stats --top 10 - < script.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := bridge.ParseTaxonomy(from)
			if err != nil {
				return err
			}

			return runStats(args[0], taxonomy, top, state.quiet, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source taxonomy (estree, shift; default: detect)")
	cmd.Flags().IntVar(&top, "top", 0, "only list the most frequent kinds (0: all)")

	return cmd
}

func runStats(input string, from bridge.Taxonomy, top int, quiet bool, stdin io.Reader, out io.Writer) error {
	data, label, err := readInput(input, stdin)
	if err != nil {
		return err
	}

	doc, err := bridge.Decode(data, from)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	stats := bridge.Summarize(doc, len(data))

	fmt.Fprintf(out, "Document: %s (%s)\n", sanitizeForTerminal(label), stats.Taxonomy)
	fmt.Fprintf(out, "  Size:  %s\n", humanize.Bytes(uint64(stats.Bytes)))
	fmt.Fprintf(out, "  Nodes: %s\n", humanize.Comma(int64(stats.Nodes)))
	fmt.Fprintf(out, "  Depth: %d\n", stats.Depth)

	if quiet {
		return nil
	}

	kinds := stats.Kinds
	if top > 0 && top < len(kinds) {
		kinds = kinds[:top]
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{"Kind", "Count", "Share"})

	for _, kc := range kinds {
		share := float64(kc.Count) / float64(stats.Nodes) * 100
		tbl.AppendRow(table.Row{kc.Kind, humanize.Comma(int64(kc.Count)), fmt.Sprintf("%.1f%%", share)})
	}

	_, err = fmt.Fprintf(out, "\n%s\n", tbl.Render())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}
