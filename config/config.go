// Package config loads the radixsort tool configuration from defaults, an
// optional YAML file and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Input formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output formats.
const (
	OutputLines  = "lines"
	OutputInline = "inline"
	OutputJSON   = "json"
)

// Config represents the complete configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig selects how the token stream is read.
type InputConfig struct {
	Format string `yaml:"format"`
	// Schema overrides the built-in JSON input schema.
	Schema string `yaml:"schema"`
}

// OutputConfig selects how the sorted list is printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig holds slog and log rotation settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // empty logs to stderr
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// Load builds the configuration. An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := getDefaultConfig()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func getDefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Format: FormatText,
		},
		Output: OutputConfig{
			Format: OutputLines,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RADIXSORT_INPUT_FORMAT"); v != "" {
		cfg.Input.Format = v
	}
	if v := os.Getenv("RADIXSORT_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("RADIXSORT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RADIXSORT_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("RADIXSORT_LOG_MAX_SIZE_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil {
			cfg.Logging.MaxSizeMB = mb
		}
	}
}

func validateConfig(cfg *Config) error {
	if !contains([]string{FormatText, FormatJSON}, cfg.Input.Format) {
		return fmt.Errorf("invalid input format %q, must be %q or %q", cfg.Input.Format, FormatText, FormatJSON)
	}
	if cfg.Input.Schema != "" && cfg.Input.Format != FormatJSON {
		return fmt.Errorf("input schema is only used with the %q format", FormatJSON)
	}
	validOutputs := []string{OutputLines, OutputInline, OutputJSON}
	if !contains(validOutputs, cfg.Output.Format) {
		return fmt.Errorf("invalid output format %q, must be one of: %v", cfg.Output.Format, validOutputs)
	}
	if !contains([]string{"debug", "info", "warn", "error"}, cfg.Logging.Level) {
		return fmt.Errorf("invalid log level %q", cfg.Logging.Level)
	}
	if cfg.Logging.MaxSizeMB <= 0 || cfg.Logging.MaxBackups < 0 || cfg.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("invalid log rotation: maxSizeMB=%d maxBackups=%d maxAgeDays=%d",
			cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
	}
	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
