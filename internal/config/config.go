package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/harrison/garmentqc/internal/aql"
	"github.com/harrison/garmentqc/internal/ledger"
)

// Output formats for command results
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents garmentqc configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `json:"logLevel" yaml:"log_level" env:"GARMENTQC_LOG_LEVEL"`

	// LogDir is the directory where run logs are written when file logging is on.
	// Relative paths are resolved against the garmentqc home directory.
	LogDir string `json:"logDir" yaml:"log_dir" env:"GARMENTQC_LOG_DIR"`

	// FileLogging mirrors console logs into a per-run log file
	FileLogging bool `json:"fileLogging" yaml:"file_logging" env:"GARMENTQC_FILE_LOGGING"`

	// LotSizePolicy decides how lots of size 0 and 1 are handled (reject, clamp)
	LotSizePolicy string `json:"lotSizePolicy" yaml:"lot_size_policy" env:"GARMENTQC_LOT_SIZE_POLICY"`

	// LedgerPointField is the point field name written to JSON ledgers (inspectionPoint, point)
	LedgerPointField string `json:"ledgerPointField" yaml:"ledger_point_field" env:"GARMENTQC_LEDGER_POINT_FIELD"`

	// Output is the default result format (text, json, yaml)
	Output string `json:"output" yaml:"output" env:"GARMENTQC_OUTPUT"`

	// BatchConcurrency bounds parallel lot evaluations (0 = unbounded)
	BatchConcurrency int `json:"batchConcurrency" yaml:"batch_concurrency" env:"GARMENTQC_BATCH_CONCURRENCY"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		LogDir:           "logs",
		FileLogging:      false,
		LotSizePolicy:    string(aql.PolicyReject),
		LedgerPointField: ledger.FieldInspectionPoint,
		Output:           OutputText,
		BatchConcurrency: 4,
	}
}

// LoadConfig loads configuration from the specified file path and applies
// environment overrides on top of it.
// If the file doesn't exist, defaults (plus environment) are returned without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file, keep defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			// Keys absent from the file keep their default values
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromHome loads config.yaml from the garmentqc home directory.
func LoadConfigFromHome() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}

// ApplyEnv overrides fields whose GARMENTQC_* environment variable is set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, output *string, lotSizePolicy *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if output != nil {
		c.Output = *output
	}
	if lotSizePolicy != nil {
		c.LotSizePolicy = *lotSizePolicy
	}
}

// Policy returns the parsed lot size policy.
func (c *Config) Policy() (aql.LotSizePolicy, error) {
	return aql.ParseLotSizePolicy(c.LotSizePolicy)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.FileLogging && c.LogDir == "" {
		return fmt.Errorf("log_dir cannot be empty when file_logging is enabled")
	}

	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("invalid lot_size_policy: %w", err)
	}

	switch c.LedgerPointField {
	case ledger.FieldInspectionPoint, ledger.FieldPoint:
	default:
		return fmt.Errorf("invalid ledger_point_field %q, must be one of: %s, %s", c.LedgerPointField, ledger.FieldInspectionPoint, ledger.FieldPoint)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q, must be one of: text, json, yaml", c.Output)
	}

	if c.BatchConcurrency < 0 {
		return fmt.Errorf("batch_concurrency must be >= 0, got %d", c.BatchConcurrency)
	}

	return nil
}
