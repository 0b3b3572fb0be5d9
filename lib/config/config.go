// Copyright 2026 The Zipnest Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the zipnest CLI.
//
// Configuration is loaded from a single file specified by:
//   - ZIPNEST_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The config file is
// optional — the zero configuration is fully usable — but when a path
// is given, it must load.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration.
type Config struct {
	// TempDir is the directory for extracted and downloaded temp
	// files. Empty means the system temp directory.
	TempDir string `yaml:"temp_dir"`

	// HTTPTimeout bounds each remote archive download, for example
	// "2m". Empty means the library default.
	HTTPTimeout string `yaml:"http_timeout"`

	// ScanNestedJars controls whether resolution may descend into
	// archive entries. Default: true.
	ScanNestedJars *bool `yaml:"scan_nested_jars"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "warn".
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load loads configuration from the ZIPNEST_CONFIG environment
// variable, or returns the defaults when it is unset.
func Load() (*Config, error) {
	configPath := os.Getenv("ZIPNEST_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The file is
// the single source of truth; environment variables do not override
// its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that have constrained forms.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.HTTPTimeout != "" {
		if _, err := time.ParseDuration(c.HTTPTimeout); err != nil {
			return fmt.Errorf("http_timeout: %w", err)
		}
	}
	return nil
}

// Timeout returns the parsed HTTP timeout, or zero when unset.
// Validate has already established that the value parses.
func (c *Config) Timeout() time.Duration {
	if c.HTTPTimeout == "" {
		return 0
	}
	timeout, _ := time.ParseDuration(c.HTTPTimeout)
	return timeout
}

// NestedJarsEnabled reports whether nested archive scanning is on.
func (c *Config) NestedJarsEnabled() bool {
	return c.ScanNestedJars == nil || *c.ScanNestedJars
}
