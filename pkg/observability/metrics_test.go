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

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

func TestRecorder_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	ref := schemaerrors.ParseReference("#/name")
	r.Record(
		schemaerrors.NewNullNotAllowed(ref),
		schemaerrors.NewNullNotAllowed(ref),
		schemaerrors.NewMinLengthViolated("a", ref),
		nil,
	)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.validationErrors.WithLabelValues("null_not_allowed", "shape")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.validationErrors.WithLabelValues("min_length_violated", "size")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.validationErrors))
}

func TestRecorder_RecordDocument(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.RecordDocument(true)
	r.RecordDocument(false)
	r.RecordDocument(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.documents.WithLabelValues("valid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.documents.WithLabelValues("invalid")))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Record(schemaerrors.NewNullNotAllowed(schemaerrors.RootReference()))
		r.RecordDocument(true)
	})
}
