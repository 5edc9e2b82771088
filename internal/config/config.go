// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the schemaerr CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tombee/schemaerr/internal/log"
)

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the CLI configuration.
type Config struct {
	// Output is the report format (text, json, yaml).
	// Default: text
	Output string `yaml:"output"`

	// Color controls styled text output (auto, always, never).
	// Default: auto
	Color string `yaml:"color"`

	// MaxErrors caps the errors printed per document. Zero means no limit.
	MaxErrors int `yaml:"max_errors"`

	// Concurrency is the number of documents validated in parallel.
	// Default: number of CPUs
	Concurrency int `yaml:"concurrency"`

	// SchemaLocation reports schema node locations instead of instance
	// locations.
	SchemaLocation bool `yaml:"schema_location"`

	// Log configures the logger.
	Log LogConfig `yaml:"log"`
}

// LogConfig is the logging section of Config.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the log output format (json, text).
	Format string `yaml:"format"`

	// AddSource adds source file and line information to logs.
	AddSource bool `yaml:"add_source"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	logDefaults := log.DefaultConfig()
	return &Config{
		Output:      OutputText,
		Color:       ColorAuto,
		MaxErrors:   0,
		Concurrency: runtime.NumCPU(),
		Log: LogConfig{
			Level:     logDefaults.Level,
			Format:    string(logDefaults.Format),
			AddSource: logDefaults.AddSource,
		},
	}
}

// Load loads configuration from an optional YAML file and then applies
// environment overrides. If configPath is empty the default path is used
// when a file exists there.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	path := configPath
	if path == "" {
		if p, err := ConfigPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, &ConfigError{
				Key:    "config_file",
				Reason: fmt.Sprintf("failed to load from %s", path),
				Cause:  err,
			}
		}
	}

	// Apply defaults to any zero values (handles minimal configs)
	cfg.applyDefaults()

	// Override with environment variables
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{
			Key:    "validation",
			Reason: "configuration validation failed",
			Cause:  err,
		}
	}

	return cfg, nil
}

// applyDefaults fills in zero values with defaults.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Output == "" {
		c.Output = defaults.Output
	}
	if c.Color == "" {
		c.Color = defaults.Color
	}
	if c.Concurrency == 0 {
		c.Concurrency = defaults.Concurrency
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
}

// loadFromFile loads configuration from a YAML file.
func (c *Config) loadFromFile(path string) error {
	// Expand home directory if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// loadFromEnv applies SCHEMAERR_* overrides and the logging variables read
// by log.FromEnv.
func (c *Config) loadFromEnv() error {
	if val := os.Getenv("SCHEMAERR_OUTPUT"); val != "" {
		c.Output = strings.ToLower(val)
	}

	if val := os.Getenv("SCHEMAERR_COLOR"); val != "" {
		c.Color = strings.ToLower(val)
	}

	if val := os.Getenv("SCHEMAERR_MAX_ERRORS"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return &ConfigError{Key: "SCHEMAERR_MAX_ERRORS", Reason: fmt.Sprintf("not an integer: %q", val), Cause: err}
		}
		c.MaxErrors = n
	}

	if val := os.Getenv("SCHEMAERR_CONCURRENCY"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return &ConfigError{Key: "SCHEMAERR_CONCURRENCY", Reason: fmt.Sprintf("not an integer: %q", val), Cause: err}
		}
		c.Concurrency = n
	}

	lc := c.LoggerConfig()
	log.ApplyEnv(lc)
	c.Log.Level = lc.Level
	c.Log.Format = string(lc.Format)
	c.Log.AddSource = lc.AddSource

	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output must be one of [text, json, yaml], got %q", c.Output))
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be one of [auto, always, never], got %q", c.Color))
	}

	if c.MaxErrors < 0 {
		errs = append(errs, fmt.Errorf("max_errors must not be negative, got %d", c.MaxErrors))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}

	if !log.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of [trace, debug, info, warn, warning, error], got %q", c.Log.Level))
	}
	switch log.Format(c.Log.Format) {
	case log.FormatJSON, log.FormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of [json, text], got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// LoggerConfig converts the logging section into a log.Config writing to
// stderr.
func (c *Config) LoggerConfig() *log.Config {
	lc := log.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Format = log.Format(c.Log.Format)
	lc.AddSource = c.Log.AddSource
	return lc
}

// isNotExist reports whether err means a file is missing.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
