package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/convert"
)

const (
	ruleContextFree = "direct"
	ruleByParent    = "by parent"
)

func kindsCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the node kinds of each taxonomy and how they translate",
		Long: `List every node kind of the ESTree and Shift taxonomies. Kinds marked
"direct" have a translation rule of their own; kinds marked "by parent" are
only translated by the rule of the node that contains them.

Examples:
  astbridge kinds
  astbridge kinds --from shift`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			taxonomy, err := bridge.ParseTaxonomy(from)
			if err != nil {
				return err
			}

			return runKinds(taxonomy, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "only list kinds of this taxonomy (estree, shift)")

	return cmd
}

func runKinds(from bridge.Taxonomy, out io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{"Taxonomy", "Kind", "Rule", "Target"})

	total := 0

	for _, taxonomy := range []bridge.Taxonomy{bridge.ESTree, bridge.Shift} {
		if from != "" && from != taxonomy {
			continue
		}

		direct := directKinds(taxonomy)

		for _, kind := range taxonomy.Registry().Kinds() {
			rule := ruleByParent
			if slices.Contains(direct, kind) {
				rule = ruleContextFree
			}

			tbl.AppendRow(table.Row{taxonomy, kind, rule, taxonomy.Other()})

			total++
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d kinds", total)})

	_, err := fmt.Fprintln(out, tbl.Render())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func directKinds(taxonomy bridge.Taxonomy) []string {
	if taxonomy == bridge.Shift {
		return convert.NewESTreeConverter().Kinds()
	}

	return convert.NewShiftConverter().Kinds()
}
