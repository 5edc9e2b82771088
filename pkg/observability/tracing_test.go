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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

func newTracer(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Errorf("failed to shutdown tracer provider: %v", err)
		}
	})
	return recorder, tp
}

func attrValue(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestRecordSpan_Errors(t *testing.T) {
	recorder, tp := newTracer(t)

	_, span := StartValidation(context.Background(), tp.Tracer("test"), "pet.json", "pet.schema.json")
	RecordSpan(span,
		schemaerrors.NewMissingRequiredKeys([]string{"id"}, schemaerrors.RootReference()),
		schemaerrors.NewLessThanMinimum(-1, schemaerrors.ParseReference("#/age")),
	)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	got := spans[0]

	assert.Equal(t, "schemaerr.validate", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "2 validation errors", got.Status().Description)

	doc, ok := attrValue(got.Attributes(), AttrDocument)
	require.True(t, ok)
	assert.Equal(t, "pet.json", doc.AsString())

	count, ok := attrValue(got.Attributes(), AttrErrorCount)
	require.True(t, ok)
	assert.Equal(t, int64(2), count.AsInt64())

	events := got.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventValidationError, events[0].Name)

	kind, ok := attrValue(events[1].Attributes, AttrKind)
	require.True(t, ok)
	assert.Equal(t, "less_than_minimum", kind.AsString())

	ref, ok := attrValue(events[1].Attributes, AttrReference)
	require.True(t, ok)
	assert.Equal(t, "#/age", ref.AsString())
}

func TestRecordSpan_Valid(t *testing.T) {
	recorder, tp := newTracer(t)

	_, span := StartValidation(context.Background(), tp.Tracer("test"), "pet.json", "pet.schema.json")
	RecordSpan(span)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Empty(t, spans[0].Events())
}

func TestStartValidation_NilTracer(t *testing.T) {
	ctx := context.Background()
	got, span := StartValidation(ctx, nil, "pet.json", "pet.schema.json")
	assert.Equal(t, ctx, got)
	assert.False(t, span.IsRecording())
	assert.NotPanics(t, func() { RecordSpan(span) })
}
