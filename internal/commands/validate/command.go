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

package validate

import (
	"github.com/spf13/cobra"

	"github.com/tombee/schemaerr/internal/commands/shared"
)

// NewCommand creates the validate command
func NewCommand() *cobra.Command {
	var (
		opts           options
		maxErrors      int
		concurrency    int
		schemaLocation bool
	)
	output := shared.NewOutputFlags()

	cmd := &cobra.Command{
		Use:   "validate --schema <schema> <document>...",
		Short: "Validate documents against a JSON Schema",
		Long: `Validate checks JSON or YAML documents against a JSON Schema and reports
every failure with its kind, location and message.

Document arguments may be glob patterns, including "**" for recursive matches.
Files ending in .yaml or .yml are read as YAML, everything else as JSON.

Filtering:
  --where <expr>     Keep only errors matching an expression over the fields
                     kind, category, status, reference, message, value,
                     value_type, expected_type, keys and pattern

Exit codes:
  0  every document is valid
  1  a document or the schema could not be read
  2  at least one document is invalid
  3  invalid flags or configuration

See also: schemaerr kinds`,
		Example: `  # Example 1: Validate one document
  schemaerr validate --schema pet.schema.json pet.json

  # Example 2: Validate every YAML file below fixtures/
  schemaerr validate --schema pet.schema.yaml 'fixtures/**/*.yaml'

  # Example 3: Only range errors, as JSON
  schemaerr validate -s pet.schema.json pet.json --where 'category == "range"' -o json

  # Example 4: List the references of failing values
  schemaerr validate -s pet.schema.json pet.json --query '.documents[].errors[]?.reference'

  # Example 5: Re-validate on every save
  schemaerr validate -s pet.schema.json pet.json --watch`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return shared.NewUsageError("at least one document is required", nil)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.schemaPath == "" {
				return shared.NewUsageError("--schema is required", nil)
			}

			cfg, err := shared.LoadConfig()
			if err != nil {
				return err
			}
			if err := output.Apply(cfg); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("max-errors") {
				cfg.MaxErrors = maxErrors
			}
			if flags.Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if flags.Changed("schema-location") {
				cfg.SchemaLocation = schemaLocation
			}
			if err := cfg.Validate(); err != nil {
				return shared.NewUsageError("invalid flags", err)
			}

			opts.patterns = args
			r, err := newRunner(cfg, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if opts.watch {
				return r.watch(cmd.Context())
			}

			report, err := r.run(cmd.Context())
			if err != nil {
				return err
			}
			return report.Err()
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "Path to the JSON Schema (JSON or YAML)")
	cmd.Flags().StringVar(&opts.root, "root", "", `Reference prefix for error locations (default "#")`)
	cmd.Flags().StringVar(&opts.where, "where", "", "Keep only errors matching this expression")
	cmd.Flags().StringVar(&opts.query, "query", "", "jq expression applied to the JSON report")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write validation metrics in Prometheus text format to this file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-validate when the schema or documents change")
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "Maximum errors printed per document (0 for no limit)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Documents validated in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&schemaLocation, "schema-location", false, "Report schema locations instead of document locations")
	cmd.Flags().AddFlagSet(output.FlagSet())

	return cmd
}
