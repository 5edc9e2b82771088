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

// Package kinds implements the command that lists every validation error
// kind.
package kinds

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tombee/schemaerr/internal/commands/shared"
	"github.com/tombee/schemaerr/internal/config"
	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Entry describes one kind.
type Entry struct {
	Name       string                `json:"name" yaml:"name"`
	Category   schemaerrors.Category `json:"category" yaml:"category"`
	Status     int                   `json:"status" yaml:"status"`
	Template   string                `json:"template" yaml:"template"`
	Suggestion string                `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Catalog is the machine-readable output of the command.
type Catalog struct {
	shared.JSONResponse `yaml:",inline"`

	Kinds []Entry `json:"kinds" yaml:"kinds"`
}

// NewCommand creates the kinds command
func NewCommand() *cobra.Command {
	var category string
	output := shared.NewOutputFlags()

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List validation error kinds",
		Long: `List every validation error kind with its category, the HTTP status a
service would answer with, and its message template.`,
		Example: `  # All kinds
  schemaerr kinds

  # Range kinds as JSON
  schemaerr kinds --category range -o json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig()
			if err != nil {
				return err
			}
			if err := output.Apply(cfg); err != nil {
				return err
			}

			entries, err := catalog(category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch cfg.Output {
			case config.OutputJSON:
				return shared.EmitJSON(out, Catalog{JSONResponse: shared.NewJSONResponse("kinds", true), Kinds: entries})
			case config.OutputYAML:
				return shared.EmitYAML(out, Catalog{JSONResponse: shared.NewJSONResponse("kinds", true), Kinds: entries})
			}
			renderText(out, entries, shared.PaletteFor(out, cfg.Color))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list kinds in this category")
	cmd.Flags().AddFlagSet(output.FlagSet())

	return cmd
}

func catalog(category string) ([]Entry, error) {
	var entries []Entry
	known := false
	for _, k := range schemaerrors.Kinds() {
		if category != "" && string(k.Category()) != category {
			continue
		}
		known = true
		entries = append(entries, Entry{
			Name:       k.String(),
			Category:   k.Category(),
			Status:     k.HTTPStatus(),
			Template:   k.Template(),
			Suggestion: k.Suggestion(),
		})
	}
	if category != "" && !known {
		return nil, shared.NewUsageError(fmt.Sprintf("unknown category %q", category), nil)
	}
	return entries, nil
}

// renderText prints entries grouped by category, in catalog order.
func renderText(w io.Writer, entries []Entry, palette shared.Palette) {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	nameColumn := lipgloss.NewStyle().Width(width + 2)

	title := cases.Title(language.English)
	var current schemaerrors.Category
	for _, e := range entries {
		if e.Category != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = e.Category
			heading := title.String(strings.ReplaceAll(string(e.Category), "_", " "))
			fmt.Fprintln(w, palette.Header(heading))
		}
		fmt.Fprintf(w, "  %s%s %s\n", nameColumn.Render(e.Name), palette.Label(fmt.Sprintf("%d", e.Status)), e.Template)
	}
}
