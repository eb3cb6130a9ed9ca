// Package config provides configuration loading and validation for astbridge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat      = errors.New("unknown output format")
	ErrInvalidIndent      = errors.New("output indent out of range")
	ErrInvalidWorkers     = errors.New("convert workers out of range")
	ErrInvalidLevel       = errors.New("unknown log level")
	ErrInvalidSampleRatio = errors.New("telemetry sample ratio must be within [0, 1]")
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatCompact = "compact"
	FormatYAML    = "yaml"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "ASTBRIDGE"

const configName = "astbridge"

// Config holds all configuration for the astbridge CLI.
type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Convert   ConvertConfig   `mapstructure:"convert"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// OutputConfig controls how translated documents are written.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
}

// ConvertConfig holds translation options.
type ConvertConfig struct {
	// CookTemplates fills template cooked values from raw text on the way
	// back to ESTree instead of copying raw.
	CookTemplates bool `mapstructure:"cook_templates"`
	Workers       int  `mapstructure:"workers"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP gRPC collector address. Empty disables export.
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	// MetricsFile receives a Prometheus text exposition of the run's metrics
	// when the process exits.
	MetricsFile string `mapstructure:"metrics_file"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for astbridge.yaml in the working directory
// and in $HOME/.config/astbridge; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viperCfg.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Output:    OutputConfig{Format: DefaultOutputFormat, Indent: DefaultOutputIndent},
		Convert:   ConvertConfig{CookTemplates: DefaultCookTemplates, Workers: DefaultWorkers},
		Logging:   LoggingConfig{Level: DefaultLogLevel, JSON: DefaultLogJSON},
		Telemetry: TelemetryConfig{OTLPInsecure: DefaultOTLPInsecure, SampleRatio: DefaultSampleRatio},
	}
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.indent", DefaultOutputIndent)

	viperCfg.SetDefault("convert.cook_templates", DefaultCookTemplates)
	viperCfg.SetDefault("convert.workers", DefaultWorkers)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", DefaultLogJSON)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", DefaultOTLPInsecure)
	viperCfg.SetDefault("telemetry.sample_ratio", DefaultSampleRatio)
	viperCfg.SetDefault("telemetry.metrics_file", "")
}

// Validate checks a configuration assembled outside LoadConfig, such as one
// adjusted by command-line flags.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatJSON, FormatCompact, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if config.Output.Indent < 0 || config.Output.Indent > maxIndent {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, config.Output.Indent)
	}

	if config.Convert.Workers <= 0 || config.Convert.Workers > maxWorkers {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Convert.Workers)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, config.Logging.Level)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	return nil
}
