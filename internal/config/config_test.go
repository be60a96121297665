package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets every GARMENTQC_* override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GARMENTQC_LOG_LEVEL",
		"GARMENTQC_LOG_DIR",
		"GARMENTQC_FILE_LOGGING",
		"GARMENTQC_LOT_SIZE_POLICY",
		"GARMENTQC_LEDGER_POINT_FIELD",
		"GARMENTQC_OUTPUT",
		"GARMENTQC_BATCH_CONCURRENCY",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != "logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "logs")
	}
	if cfg.LotSizePolicy != "reject" {
		t.Errorf("LotSizePolicy = %q, want reject", cfg.LotSizePolicy)
	}
	if cfg.LedgerPointField != "inspectionPoint" {
		t.Errorf("LedgerPointField = %q, want inspectionPoint", cfg.LedgerPointField)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want text", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	configContent := `log_level: debug
log_dir: /tmp/qc-logs
file_logging: true
lot_size_policy: clamp
ledger_point_field: point
output: json
batch_concurrency: 8
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogDir != "/tmp/qc-logs" {
		t.Errorf("LogDir = %q, want /tmp/qc-logs", cfg.LogDir)
	}
	if !cfg.FileLogging {
		t.Error("FileLogging = false, want true")
	}
	if cfg.LotSizePolicy != "clamp" {
		t.Errorf("LotSizePolicy = %q, want clamp", cfg.LotSizePolicy)
	}
	if cfg.LedgerPointField != "point" {
		t.Errorf("LedgerPointField = %q, want point", cfg.LedgerPointField)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.BatchConcurrency != 8 {
		t.Errorf("BatchConcurrency = %d, want 8", cfg.BatchConcurrency)
	}
}

// TestLoadConfigFileNotExists returns defaults for a missing file
func TestLoadConfigFileNotExists(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigPartialValues keeps defaults for keys missing from the file
func TestLoadConfigPartialValues(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("# only the policy\nlot_size_policy: clamp\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LotSizePolicy != "clamp" {
		t.Errorf("LotSizePolicy = %q, want clamp", cfg.LotSizePolicy)
	}
	if cfg.LogLevel != "info" || cfg.Output != OutputText || cfg.BatchConcurrency != 4 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

// TestLoadConfigInvalidYAML reports parse errors
func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_level: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestLoadConfigEnvOverrides verifies GARMENTQC_* variables win over the file
func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_level: debug\noutput: yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GARMENTQC_LOG_LEVEL", "warn")
	t.Setenv("GARMENTQC_LOT_SIZE_POLICY", "clamp")
	t.Setenv("GARMENTQC_FILE_LOGGING", "true")
	t.Setenv("GARMENTQC_BATCH_CONCURRENCY", "2")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Output != OutputYAML {
		t.Errorf("Output = %q, want yaml from file", cfg.Output)
	}
	if cfg.LotSizePolicy != "clamp" {
		t.Errorf("LotSizePolicy = %q, want clamp", cfg.LotSizePolicy)
	}
	if !cfg.FileLogging {
		t.Error("FileLogging = false, want true")
	}
	if cfg.BatchConcurrency != 2 {
		t.Errorf("BatchConcurrency = %d, want 2", cfg.BatchConcurrency)
	}
}

// TestLoadConfigEnvInvalid reports unparsable environment values
func TestLoadConfigEnvInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("GARMENTQC_BATCH_CONCURRENCY", "many")

	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for non-numeric GARMENTQC_BATCH_CONCURRENCY")
	}
}

// TestMergeWithFlags verifies flags take precedence
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "error"
	output := "yaml"

	cfg.MergeWithFlags(&level, &output, nil)

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Output = %q, want yaml", cfg.Output)
	}
	if cfg.LotSizePolicy != "reject" {
		t.Errorf("LotSizePolicy changed by nil flag: %q", cfg.LotSizePolicy)
	}
}

// TestConfigValidation covers each rejected value
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log_level"},
		{"file logging without dir", func(c *Config) { c.FileLogging = true; c.LogDir = "" }, "log_dir cannot be empty"},
		{"bad policy", func(c *Config) { c.LotSizePolicy = "round" }, "invalid lot_size_policy"},
		{"bad point field", func(c *Config) { c.LedgerPointField = "pom" }, "invalid ledger_point_field"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "invalid output"},
		{"negative concurrency", func(c *Config) { c.BatchConcurrency = -1 }, "batch_concurrency must be >= 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
