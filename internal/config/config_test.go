package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogPath != "performance_log.csv" {
		t.Errorf("Expected default log path 'performance_log.csv', got %s", cfg.LogPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.LogLevel)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to default to false")
	}
	if cfg.Export.Dir != "." {
		t.Errorf("Expected default export dir '.', got %s", cfg.Export.Dir)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("Expected default report format 'text', got %s", cfg.Report.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"bad report format", func(c *Config) { c.Report.Format = "xml" }, "invalid report format"},
		{"empty report format ok", func(c *Config) { c.Report.Format = "" }, ""},
		{"empty log path", func(c *Config) { c.LogPath = "" }, "log_path must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	original := &Config{
		LogPath:  "/var/log/ui_timings.csv",
		LogLevel: "debug",
		Verbose:  true,
		Export:   ExportConfig{Dir: "/tmp/exports"},
		Report:   ReportConfig{Format: "json"},
	}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() error: %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}

	if decoded != *original {
		t.Errorf("Round trip mismatch: got %+v, want %+v", decoded, *original)
	}
}

func TestConfigYAMLFieldNames(t *testing.T) {
	yamlData := `
log_path: custom.csv
log_level: warn
export:
  dir: out
report:
  format: csv
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(yamlData), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}

	if cfg.LogPath != "custom.csv" {
		t.Errorf("Expected log path 'custom.csv', got %s", cfg.LogPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got %s", cfg.LogLevel)
	}
	if cfg.Export.Dir != "out" {
		t.Errorf("Expected export dir 'out', got %s", cfg.Export.Dir)
	}
	if cfg.Report.Format != "csv" {
		t.Errorf("Expected report format 'csv', got %s", cfg.Report.Format)
	}
}
