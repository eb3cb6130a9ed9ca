package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/pkg/cook"
)

func cookCmd() *cobra.Command {
	var quote bool

	cmd := &cobra.Command{
		Use:   "cook <raw> | -",
		Short: "Print the cooked value of a raw template chunk",
		Long: `Process the escape sequences of a raw template literal chunk the way the
JavaScript language does and print the resulting string.

Examples:
  astbridge cook 'a\tb'
  astbridge cook --quote '\u{1F600}'
  printf 'line\\\ncontinued' | astbridge cook -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]

			if raw == stdinArg {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}

				raw = string(data)
			}

			return runCook(raw, quote, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&quote, "quote", false, "print the value as a quoted string literal")

	return cmd
}

func runCook(raw string, quote bool, out io.Writer) error {
	cooked := cook.Cook(raw)
	if quote {
		cooked = strconv.Quote(cooked)
	}

	_, err := fmt.Fprintln(out, cooked)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
