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

package shared

import (
	"github.com/spf13/pflag"

	"github.com/tombee/schemaerr/internal/config"
)

// Global flag values - set by root command
var (
	verboseFlag bool
	quietFlag   bool
	configFlag  string

	// Build-time version information
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// RegisterFlagPointers returns pointers to flag variables for binding.
// Called by root command to register flags.
func RegisterFlagPointers() (*bool, *bool, *string) {
	return &verboseFlag, &quietFlag, &configFlag
}

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verboseFlag
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quietFlag
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return configFlag
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return version, commit, buildDate
}

// SetConfigPathForTest sets the config path for testing purposes
func SetConfigPathForTest(path string) {
	configFlag = path
}

// OutputFlags are the presentation flags shared by commands that print
// reports.
type OutputFlags struct {
	Output string
	Color  string

	fs *pflag.FlagSet
}

// NewOutputFlags builds the output flag set. Defaults are empty so that
// unset flags fall back to the configuration.
func NewOutputFlags() *OutputFlags {
	f := &OutputFlags{}
	f.fs = pflag.NewFlagSet("output", pflag.ContinueOnError)
	f.fs.StringVarP(&f.Output, "output", "o", "", "Output format: text, json, yaml")
	f.fs.StringVar(&f.Color, "color", "", "Color mode: auto, always, never")
	return f
}

// FlagSet returns the flags for adding to a command.
func (f *OutputFlags) FlagSet() *pflag.FlagSet {
	return f.fs
}

// Apply copies flags that were set onto cfg and re-validates it.
func (f *OutputFlags) Apply(cfg *config.Config) error {
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Color != "" {
		cfg.Color = f.Color
	}
	if err := cfg.Validate(); err != nil {
		return NewUsageError("invalid output flags", err)
	}
	return nil
}

// LoadConfig loads configuration from the --config path, mapping failures to
// usage errors.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, NewUsageError("loading configuration", err)
	}
	if verboseFlag && config.Default().Log.Level == cfg.Log.Level {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}
