package domain

import (
	"fmt"
	"path/filepath"
)

// ConfigFileName is the configuration file looked up in the working directory.
const ConfigFileName = ".validate-slnf.yaml"

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config holds settings loaded from .validate-slnf.yaml. Command-line flags
// override these values.
type Config struct {
	Verbose           bool   `yaml:"verbose"             json:"verbose"`
	SkipSolutionCheck bool   `yaml:"skip_solution_check" json:"skip_solution_check"`
	SkipDiskCheck     bool   `yaml:"skip_disk_check"     json:"skip_disk_check"`
	Pattern           string `yaml:"pattern"             json:"pattern,omitempty"`
	LogLevel          string `yaml:"log_level"           json:"log_level,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Pattern:  "*" + FilterExtension,
		LogLevel: "warn",
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Pattern == "" {
		c.Pattern = d.Pattern
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	return c
}

// Checks returns the cross-check selection carried by the config.
func (c Config) Checks() CheckOptions {
	return CheckOptions{
		SkipSolutionCheck: c.SkipSolutionCheck,
		SkipDiskCheck:     c.SkipDiskCheck,
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Pattern != "" {
		if _, err := filepath.Match(c.Pattern, ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
		}
	}

	if c.LogLevel != "" {
		valid := false
		for _, l := range ValidLogLevels {
			if c.LogLevel == l {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
		}
	}

	return nil
}
