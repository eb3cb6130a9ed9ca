package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

func schemaCmd() *cobra.Command {
	var rootOnly bool

	cmd := &cobra.Command{
		Use:       "schema <estree|shift>",
		Short:     "Print the JSON Schema of a taxonomy's tree documents",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(bridge.ESTree), string(bridge.Shift)},
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := bridge.ParseTaxonomy(args[0])
			if err != nil {
				return err
			}

			if taxonomy == "" {
				return fmt.Errorf("%w: taxonomy name required", bridge.ErrUnknownTaxonomy)
			}

			return runSchema(taxonomy, rootOnly, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&rootOnly, "root", false, "only describe the root node kind")

	return cmd
}

func runSchema(taxonomy bridge.Taxonomy, rootOnly bool, out io.Writer) error {
	schema := astjson.DocumentSchema(taxonomy.Registry())
	if rootOnly {
		schema = astjson.Schema(taxonomy.Registry())
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	_, err = fmt.Fprintf(out, "%s\n", data)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
