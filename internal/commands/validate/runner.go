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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tombee/schemaerr/internal/commands/shared"
	"github.com/tombee/schemaerr/internal/config"
	"github.com/tombee/schemaerr/internal/filter"
	"github.com/tombee/schemaerr/internal/jq"
	"github.com/tombee/schemaerr/internal/log"
	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
	"github.com/tombee/schemaerr/pkg/observability"
	"github.com/tombee/schemaerr/pkg/schema"
)

const tracerName = "github.com/tombee/schemaerr/validate"

// options are the validate flags after merging with configuration.
type options struct {
	schemaPath  string
	patterns    []string
	root        string
	where       string
	query       string
	metricsFile string
	watch       bool
}

// runner validates documents against one schema and prints reports.
type runner struct {
	cfg    *config.Config
	opts   options
	out    io.Writer
	quiet  bool
	logger *slog.Logger

	palette  shared.Palette
	filter   *filter.Filter
	jq       *jq.Executor
	registry *prometheus.Registry
	recorder *observability.Recorder
	tracer   trace.Tracer
}

func newRunner(cfg *config.Config, opts options, out io.Writer) (*runner, error) {
	f, err := filter.Compile(opts.where)
	if err != nil {
		return nil, shared.NewUsageError("invalid --where expression", err)
	}

	executor := jq.NewExecutor(0, 0)
	if err := executor.Validate(opts.query); err != nil {
		return nil, shared.NewUsageError("invalid --query expression", err)
	}

	registry := prometheus.NewRegistry()

	return &runner{
		cfg:      cfg,
		opts:     opts,
		out:      out,
		quiet:    shared.GetQuiet(),
		logger:   log.New(cfg.LoggerConfig()),
		palette:  shared.PaletteFor(out, cfg.Color),
		filter:   f,
		jq:       executor,
		registry: registry,
		recorder: observability.NewRecorder(registry),
		tracer:   otel.Tracer(tracerName),
	}, nil
}

// run performs one validation pass and prints its report.
func (r *runner) run(ctx context.Context) (*Report, error) {
	validator, err := r.compile()
	if err != nil {
		return nil, err
	}

	paths, err := expandPatterns(r.opts.patterns)
	if err != nil {
		return nil, shared.NewUsageError("expanding document arguments", err)
	}

	report := r.validateAll(ctx, validator, paths)

	if err := r.emit(ctx, report); err != nil {
		return nil, shared.NewExecutionError("writing report", err)
	}

	if r.opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(r.opts.metricsFile, r.registry); err != nil {
			return nil, shared.NewExecutionError("writing metrics", err)
		}
	}

	return report, nil
}

func (r *runner) compile() (*schema.Validator, error) {
	schemaOpts := []schema.Option{schema.WithLogger(r.logger)}
	if r.opts.root != "" {
		schemaOpts = append(schemaOpts, schema.WithRoot(schemaerrors.ParseReference(r.opts.root)))
	}
	if r.cfg.SchemaLocation {
		schemaOpts = append(schemaOpts, schema.WithSchemaLocation())
	}

	validator, err := schema.CompileFile(r.opts.schemaPath, schemaOpts...)
	if err != nil {
		return nil, shared.NewExecutionError("loading schema", err)
	}
	return validator, nil
}

// validateAll validates every document in parallel. Results keep the order
// of paths.
func (r *runner) validateAll(ctx context.Context, validator *schema.Validator, paths []string) *Report {
	mapper := iter.Mapper[string, DocumentResult]{MaxGoroutines: r.cfg.Concurrency}
	results := mapper.Map(paths, func(path *string) DocumentResult {
		return r.validateOne(ctx, validator, *path)
	})

	invalid := slices.ContainsFunc(results, func(d DocumentResult) bool { return !d.Valid })
	return &Report{
		JSONResponse: shared.NewJSONResponse("validate", !invalid),
		Schema:       validator.Name(),
		Documents:    results,
	}
}

func (r *runner) validateOne(ctx context.Context, validator *schema.Validator, path string) DocumentResult {
	logger := log.WithDocument(r.logger, path, validator.Name())

	_, span := observability.StartValidation(ctx, r.tracer, path, validator.Name())
	defer span.End()

	doc, err := schema.LoadFile(path)
	if err != nil {
		logger.Warn("document could not be loaded", log.Error(err))
		span.RecordError(err)
		return failedDocument(path, err)
	}

	report, err := validator.Validate(doc)
	if err != nil {
		logger.Warn("document could not be validated", log.Error(err))
		span.RecordError(err)
		return failedDocument(path, err)
	}

	errs, err := r.filter.Apply(report.Errors)
	if err != nil {
		logger.Warn("filter failed", log.Error(err))
		return failedDocument(path, err)
	}
	unmapped := report.Unmapped
	if r.filter.String() != "" {
		// Keywords without a kind cannot be matched by a filter.
		unmapped = nil
	}

	for _, e := range errs {
		log.Trace(logger, "validation error", log.ValidationAttrs(e), slog.String("message", e.Error()))
	}
	logger.Debug("document checked",
		slog.Int("errors", len(errs)),
		slog.Int("unmapped", len(unmapped)),
	)

	observability.RecordSpan(span, errs...)
	r.recorder.Record(errs...)
	res := newDocumentResult(path, errs, unmapped, r.cfg.MaxErrors)
	r.recorder.RecordDocument(res.Valid)

	return res
}

// emit prints the report, or the results of the --query expression run
// over its JSON form.
func (r *runner) emit(ctx context.Context, report *Report) error {
	if r.opts.query == "" {
		return report.render(r.out, r.cfg.Output, r.palette, r.quiet)
	}

	results, err := r.jq.ExecuteAll(ctx, r.opts.query, report)
	if err != nil {
		return schemaerrors.Wrap(err, "running query")
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)
	for _, v := range results {
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// expandPatterns resolves glob arguments (including "**") to file paths.
// Arguments without glob syntax are kept as-is so a missing file is
// reported for that document. The result is deduplicated.
func expandPatterns(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, schemaerrors.Wrapf(err, "invalid pattern %q", pattern)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no documents match %q", pattern)
		}
		for _, m := range matches {
			if info, statErr := os.Stat(m); statErr == nil && info.IsDir() {
				continue
			}
			add(filepath.Clean(m))
		}
	}

	if len(paths) == 0 {
		return nil, schemaerrors.New("no documents to validate")
	}
	return paths, nil
}
