// Package config loads perftimer tool configuration from files, environment
// variables, and command-line flags.
package config

import (
	"fmt"
	"strings"
)

// Config holds all settings for the perftimer CLI and the measurement
// library it drives.
type Config struct {
	// Global settings
	LogPath  string `mapstructure:"log_path" yaml:"log_path" json:"log_path"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Export settings
	Export ExportConfig `mapstructure:"export" yaml:"export" json:"export"`

	// Report settings
	Report ReportConfig `mapstructure:"report" yaml:"report" json:"report"`
}

// ExportConfig controls where exported record files are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{
		LogPath:  "performance_log.csv",
		LogLevel: "info",
		Verbose:  false,
		Export: ExportConfig{
			Dir: ".",
		},
		Report: ReportConfig{
			Format: "text",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	validFormats := []string{"text", "json", "csv"}
	if c.Report.Format != "" && !contains(validFormats, c.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of: %s)",
			c.Report.Format, strings.Join(validFormats, ", "))
	}

	if c.LogPath == "" {
		return fmt.Errorf("log_path must not be empty")
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
