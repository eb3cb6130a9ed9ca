package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/config"
	"github.com/Sumatoshi-tech/astbridge/pkg/observability"
)

// ErrStdinInBatch is returned when "-" is mixed with file arguments.
var ErrStdinInBatch = errors.New("stdin cannot be combined with other inputs")

// ErrOutputCollision is returned when two batch inputs map to the same file
// in the output directory.
var ErrOutputCollision = errors.New("batch inputs share an output file name")

const yamlSeparator = "---\n"

// convertOptions are the effective settings of one convert run: flags that
// were set on the command line win over configuration.
type convertOptions struct {
	from    bridge.Taxonomy
	format  string
	indent  int
	output  string
	workers int
	cook    bool
}

func convertCmd(state *app) *cobra.Command {
	var from, format, output string

	var indent, workers int

	var cookTemplates bool

	cmd := &cobra.Command{
		Use:   "convert [files...|-]",
		Short: "Convert syntax tree documents to the other taxonomy",
		Long: `Convert ESTree documents to Shift and Shift documents to ESTree. The source
taxonomy is detected from the root node kind unless --from is given.

Examples:
  astbridge convert program.json              # Convert one document
  cat program.json | astbridge convert -      # Convert from stdin
  astbridge convert -f yaml script.json       # Write YAML
  astbridge convert --cook shift.json         # Compute template cooked values
  astbridge convert -o out/ -w 8 src/*.json   # Convert a batch into a directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := state.convertOptions(cmd, from, format, output, indent, workers, cookTemplates)
			if err != nil {
				return err
			}

			return runConvert(cmd.Context(), state, args, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source taxonomy (estree, shift; default: detect)")
	cmd.Flags().StringVarP(&format, "format", "f", config.DefaultOutputFormat, "output format (json, compact, yaml)")
	cmd.Flags().IntVar(&indent, "indent", config.DefaultOutputIndent, "indent width for json output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or directory for several inputs (default: stdout)")
	cmd.Flags().IntVarP(&workers, "workers", "w", config.DefaultWorkers, "number of documents converted in parallel")
	cmd.Flags().BoolVar(&cookTemplates, "cook", config.DefaultCookTemplates,
		"compute template cooked values when converting to ESTree")

	return cmd
}

func (a *app) convertOptions(
	cmd *cobra.Command, from, format, output string, indent, workers int, cookTemplates bool,
) (convertOptions, error) {
	taxonomy, err := bridge.ParseTaxonomy(from)
	if err != nil {
		return convertOptions{}, err
	}

	cfg := *a.cfg

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = format
	}

	if flags.Changed("indent") {
		cfg.Output.Indent = indent
	}

	if flags.Changed("workers") {
		cfg.Convert.Workers = workers
	}

	if flags.Changed("cook") {
		cfg.Convert.CookTemplates = cookTemplates
	}

	if err := cfg.Validate(); err != nil {
		return convertOptions{}, err
	}

	return convertOptions{
		from:    taxonomy,
		format:  cfg.Output.Format,
		indent:  cfg.Output.Indent,
		output:  output,
		workers: cfg.Convert.Workers,
		cook:    cfg.Convert.CookTemplates,
	}, nil
}

func runConvert(ctx context.Context, state *app, files []string, opts convertOptions, stdin io.Reader, stdout io.Writer) error {
	if len(files) == 0 {
		files = []string{stdinArg}
	}

	if len(files) > 1 && slices.Contains(files, stdinArg) {
		return ErrStdinInBatch
	}

	var names []string

	if opts.output != "" && len(files) > 1 {
		var err error

		names, err = outputNames(files, opts.format)
		if err != nil {
			return err
		}
	}

	ctx, span := state.providers.Tracer.Start(ctx, "astbridge.convert",
		trace.WithAttributes(attribute.Int(observability.AttrBatchSize, len(files))),
	)
	defer span.End()

	translator := state.translator(opts.cook)
	rendered := make([][]byte, len(files))

	err := bridge.ForEach(ctx, files, opts.workers, func(ctx context.Context, i int, file string) error {
		out, convErr := convertOne(ctx, translator, file, opts, stdin)
		if convErr != nil {
			return fmt.Errorf("convert %s: %w", file, convErr)
		}

		state.providers.Logger.DebugContext(ctx, "converted", "file", file, "bytes", len(out))
		rendered[i] = out

		return nil
	})
	if err != nil {
		span.RecordError(err)

		return err
	}

	return writeConverted(names, rendered, opts, stdout)
}

func convertOne(ctx context.Context, translator *bridge.Translator, file string, opts convertOptions, stdin io.Reader) ([]byte, error) {
	data, _, err := readInput(file, stdin)
	if err != nil {
		return nil, err
	}

	out, err := translator.TranslateFile(ctx, file, data, opts.from)
	if err != nil {
		return nil, err
	}

	return bridge.RenderDocument(out, opts.format, opts.indent)
}

// writeConverted writes rendered documents to stdout, to the single output
// file, or into the output directory under names.
func writeConverted(names []string, rendered [][]byte, opts convertOptions, stdout io.Writer) error {
	switch {
	case opts.output == "":
		for i, out := range rendered {
			if i > 0 && opts.format == config.FormatYAML {
				if _, err := io.WriteString(stdout, yamlSeparator); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			if err := writeOutput("", stdout, out); err != nil {
				return err
			}
		}

		return nil
	case len(rendered) == 1:
		return writeOutput(opts.output, stdout, rendered[0])
	default:
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		for i, name := range names {
			if err := writeOutput(filepath.Join(opts.output, name), stdout, rendered[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// outputNames maps each batch input to its file name in the output
// directory. Inputs that would overwrite each other are rejected.
func outputNames(files []string, format string) ([]string, error) {
	names := make([]string, len(files))
	seen := make(map[string]string, len(files))

	for i, file := range files {
		name := outputName(file, format)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, prev, file, name)
		}

		seen[name] = file
		names[i] = name
	}

	return names, nil
}

// outputName is the file name a batch input is written under.
func outputName(file, format string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	if format == config.FormatYAML {
		return base + ".yaml"
	}

	return base + ".json"
}
