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

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tombee/schemaerr/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for schemaerr
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemaerr",
		Short: "schemaerr - schema validation diagnostics",
		Long: `schemaerr validates JSON and YAML documents against JSON Schema and
reports every failure as a typed validation error: a kind, the location of the
failing value, and a single-line message.

Run 'schemaerr kinds' to see every error kind.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	// Get flag pointers from shared package
	verbose, quiet, config := shared.RegisterFlagPointers()

	// Add global flags
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(quiet, "quiet", "q", false, "Only print invalid documents")
	cmd.PersistentFlags().StringVar(config, "config", "", "Path to config file (default: ~/.config/schemaerr/config.yaml)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return shared.NewUsageError("invalid flags", err)
	})

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
