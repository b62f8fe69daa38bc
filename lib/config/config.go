// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable naming the config file.
const EnvConfigPath = "INTAKE_CONFIG"

// Config is the intake application configuration.
type Config struct {
	// SpoolDir is where the spool committer writes envelopes and
	// payloads.
	SpoolDir string `yaml:"spool_dir"`

	// JoinToken joins accumulated body lines. Empty means newline.
	JoinToken string `yaml:"join_token"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Empty means "info".
	LogLevel string `yaml:"log_level"`

	// AliasFile is the path to a JSONC alias-extension file applied
	// on top of the built-in schema registry. Empty means the
	// built-ins are used unmodified.
	AliasFile string `yaml:"alias_file"`

	// DefaultTimezone is recorded on commits when the caller does
	// not supply one.
	DefaultTimezone string `yaml:"default_timezone"`
}

// Load reads and validates the config at the given path. The path is
// required: there is no discovery.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: no path given (set %s or pass --config)", EnvConfigPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var configuration Config
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &configuration, nil
}

// LoadDefault loads the config named by the INTAKE_CONFIG environment
// variable, or returns an empty config when the variable is unset.
// Commands that can run without configuration use this.
func LoadDefault() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return &Config{}, nil
	}
	return Load(path)
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
