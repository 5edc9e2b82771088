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

// Package observability exports validation failures as prometheus metrics
// and OpenTelemetry span events.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Recorder counts validated documents and their failures.
type Recorder struct {
	// validationErrors tracks failures by kind and category
	validationErrors *prometheus.CounterVec

	// documents tracks validated documents by outcome
	documents *prometheus.CounterVec
}

// NewRecorder registers the validation metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		validationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schemaerr_validation_errors_total",
				Help: "Total validation errors by kind and category",
			},
			[]string{"kind", "category"},
		),
		documents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schemaerr_documents_total",
				Help: "Total validated documents by result",
			},
			[]string{"result"},
		),
	}
}

// Record increments the error counter once per error. Nil errors are skipped.
func (r *Recorder) Record(errs ...schemaerrors.ValidationError) {
	if r == nil {
		return
	}
	for _, err := range errs {
		if err == nil {
			continue
		}
		k := err.Kind()
		r.validationErrors.WithLabelValues(k.String(), string(k.Category())).Inc()
	}
}

// RecordDocument counts one validated document as valid or invalid.
func (r *Recorder) RecordDocument(valid bool) {
	if r == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	r.documents.WithLabelValues(result).Inc()
}
