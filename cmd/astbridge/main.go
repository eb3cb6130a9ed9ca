// Package main provides the astbridge CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/config"
	"github.com/Sumatoshi-tech/astbridge/pkg/observability"
	"github.com/Sumatoshi-tech/astbridge/pkg/version"
)

// exitCodeCheckFailure is the exit code for documents that fail validation
// or do not survive a round trip.
const exitCodeCheckFailure = 2

// envOTLPHeaders is the standard OTel env var for exporter headers.
const envOTLPHeaders = "OTEL_EXPORTER_OTLP_HEADERS"

// stdinArg names standard input on the command line.
const stdinArg = "-"

// Check failures, mapped to exitCodeCheckFailure.
var (
	ErrValidationFailed  = errors.New("validation failed")
	ErrRoundTripMismatch = errors.New("round trip changed the document")
)

// app carries state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool

	cfg       *config.Config
	providers observability.Providers
	metrics   *observability.ConversionMetrics
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrRoundTripMismatch) {
			os.Exit(exitCodeCheckFailure)
		}

		os.Exit(1)
	}
}

// run executes one CLI invocation and flushes telemetry afterwards.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	state := &app{}

	rootCmd := newRootCmd(state)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)

	if state.providers.Shutdown != nil {
		err = errors.Join(err, state.providers.Shutdown(context.WithoutCancel(ctx)))
	}

	return err
}

func newRootCmd(state *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "astbridge",
		Short: "Translate JavaScript syntax trees between ESTree and Shift",
		Long: `astbridge converts ES2015 syntax trees between the ESTree (SpiderMonkey)
taxonomy and the Shift taxonomy, both ways, as JSON documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "",
		"config file (default is ./astbridge.yaml or $HOME/.config/astbridge/astbridge.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&state.quiet, "quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().BoolVar(&state.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(convertCmd(state))
	rootCmd.AddCommand(roundtripCmd(state))
	rootCmd.AddCommand(validateCmd(state))
	rootCmd.AddCommand(kindsCmd())
	rootCmd.AddCommand(statsCmd(state))
	rootCmd.AddCommand(cookCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(completionCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup loads configuration and starts telemetry before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	a.cfg = cfg

	level, err := observability.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	switch {
	case a.verbose:
		level = slog.LevelDebug
	case a.quiet:
		level = slog.LevelError
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv(envOTLPHeaders))
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.MetricsFile = cfg.Telemetry.MetricsFile
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = cmd.ErrOrStderr()

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	a.providers = providers

	metrics, err := observability.NewConversionMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	a.metrics = metrics

	return nil
}

// translator builds a Translator wired to the invocation's telemetry.
func (a *app) translator(cookTemplates bool) *bridge.Translator {
	return bridge.NewTranslator(
		bridge.WithCookedTemplates(cookTemplates),
		bridge.WithTracer(a.providers.Tracer),
		bridge.WithMetrics(a.metrics),
		bridge.WithLogger(a.providers.Logger),
	)
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "astbridge %s\n", version.String())
		},
	}

	return cmd
}
