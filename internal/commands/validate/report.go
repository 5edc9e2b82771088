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
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tombee/schemaerr/internal/commands/shared"
	"github.com/tombee/schemaerr/internal/config"
	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
	"github.com/tombee/schemaerr/pkg/schema"
)

// Report is the outcome of one validation run over every document.
type Report struct {
	shared.JSONResponse `yaml:",inline"`

	Schema    string           `json:"schema" yaml:"schema"`
	Documents []DocumentResult `json:"documents" yaml:"documents"`
}

// DocumentResult is the outcome for one document.
type DocumentResult struct {
	Path  string `json:"path" yaml:"path"`
	Valid bool   `json:"valid" yaml:"valid"`

	// Status is the HTTP status a service would answer with for this
	// document's errors. Zero when valid or when the document could not be read.
	Status int `json:"status,omitempty" yaml:"status,omitempty"`

	Errors   []schemaerrors.Detail `json:"errors,omitempty" yaml:"errors,omitempty"`
	Unmapped []UnmappedDetail      `json:"unmapped,omitempty" yaml:"unmapped,omitempty"`

	// Omitted counts errors dropped by the max-errors limit.
	Omitted int `json:"omitted,omitempty" yaml:"omitted,omitempty"`

	// Failure is set when the document could not be read or decoded.
	Failure string `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// UnmappedDetail describes a failed keyword with no error kind.
type UnmappedDetail struct {
	Reference string `json:"reference" yaml:"reference"`
	Keyword   string `json:"keyword" yaml:"keyword"`
	Message   string `json:"message" yaml:"message"`
}

func newDocumentResult(path string, errs schemaerrors.List, unmapped []*schema.KeywordError, maxErrors int) DocumentResult {
	res := DocumentResult{
		Path:  path,
		Valid: len(errs) == 0 && len(unmapped) == 0,
	}
	if res.Valid {
		return res
	}

	res.Status = http.StatusUnprocessableEntity
	if len(errs) > 0 {
		res.Status = schemaerrors.NewProblem(errs).Status
	}

	for _, u := range unmapped {
		res.Unmapped = append(res.Unmapped, UnmappedDetail{
			Reference: u.Path,
			Keyword:   u.Keyword,
			Message:   u.Message,
		})
	}

	details := errs.Details()
	if maxErrors > 0 && len(details)+len(res.Unmapped) > maxErrors {
		total := len(details) + len(res.Unmapped)
		if len(details) > maxErrors {
			details = details[:maxErrors]
		}
		remaining := maxErrors - len(details)
		if len(res.Unmapped) > remaining {
			res.Unmapped = res.Unmapped[:remaining]
		}
		res.Omitted = total - len(details) - len(res.Unmapped)
	}
	res.Errors = details

	return res
}

func failedDocument(path string, err error) DocumentResult {
	return DocumentResult{Path: path, Failure: err.Error()}
}

// ErrorCount returns the number of errors found, including omitted ones.
func (d DocumentResult) ErrorCount() int {
	return len(d.Errors) + len(d.Unmapped) + d.Omitted
}

// Invalid returns the number of documents that failed validation.
func (r *Report) Invalid() int {
	n := 0
	for _, d := range r.Documents {
		if !d.Valid && d.Failure == "" {
			n++
		}
	}
	return n
}

// Failed returns the number of documents that could not be validated.
func (r *Report) Failed() int {
	n := 0
	for _, d := range r.Documents {
		if d.Failure != "" {
			n++
		}
	}
	return n
}

// Err maps the report to the command's exit error, or nil when every
// document is valid.
func (r *Report) Err() error {
	switch {
	case r.Failed() > 0:
		return shared.NewExecutionError(fmt.Sprintf("%d document(s) could not be validated", r.Failed()), nil)
	case r.Invalid() > 0:
		return shared.NewInvalidDocumentError("", nil)
	default:
		return nil
	}
}

// render writes the report in the configured format.
func (r *Report) render(w io.Writer, format string, palette shared.Palette, quiet bool) error {
	switch format {
	case config.OutputJSON:
		return shared.EmitJSON(w, r)
	case config.OutputYAML:
		return shared.EmitYAML(w, r)
	default:
		r.renderText(w, palette, quiet)
		return nil
	}
}

func (r *Report) renderText(w io.Writer, palette shared.Palette, quiet bool) {
	for _, d := range r.Documents {
		switch {
		case d.Failure != "":
			fmt.Fprintln(w, palette.Error(palette.Bold(d.Path)+" "+d.Failure))
		case d.Valid:
			if !quiet {
				fmt.Fprintln(w, palette.OK(d.Path))
			}
		default:
			fmt.Fprintln(w, palette.Error(fmt.Sprintf("%s (%s)", palette.Bold(d.Path), plural(d.ErrorCount(), "error"))))
			for _, e := range d.Errors {
				fmt.Fprintf(w, "  %s %s\n", palette.Label(string(e.Category)), e.Message)
			}
			for _, u := range d.Unmapped {
				fmt.Fprintf(w, "  %s %s %s\n", palette.Label(u.Keyword), u.Reference, u.Message)
			}
			if d.Omitted > 0 {
				fmt.Fprintf(w, "  %s\n", palette.Label(fmt.Sprintf("... %d more", d.Omitted)))
			}
		}
	}

	if quiet {
		return
	}

	summary := fmt.Sprintf("%s checked against %s", plural(len(r.Documents), "document"), r.Schema)
	var problems []string
	if n := r.Invalid(); n > 0 {
		problems = append(problems, fmt.Sprintf("%d invalid", n))
	}
	if n := r.Failed(); n > 0 {
		problems = append(problems, fmt.Sprintf("%d failed", n))
	}
	if len(problems) > 0 {
		summary += ": " + strings.Join(problems, ", ")
	}
	fmt.Fprintln(w, palette.Label(summary))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
