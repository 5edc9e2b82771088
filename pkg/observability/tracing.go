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
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Attribute keys used on validation spans and events.
const (
	AttrDocument   = attribute.Key("schemaerr.document")
	AttrSchema     = attribute.Key("schemaerr.schema")
	AttrErrorCount = attribute.Key("schemaerr.error_count")
	AttrKind       = attribute.Key("schemaerr.kind")
	AttrCategory   = attribute.Key("schemaerr.category")
	AttrReference  = attribute.Key("schemaerr.reference")
)

// EventValidationError is the name of the span event added per failure.
const EventValidationError = "validation_error"

// StartValidation starts a span covering the validation of one document.
// A nil tracer returns ctx and a non-recording span.
func StartValidation(ctx context.Context, tracer trace.Tracer, document, schema string) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, "schemaerr.validate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			AttrDocument.String(document),
			AttrSchema.String(schema),
		),
	)
}

// RecordSpan adds one event per error to span and sets the error count.
// When errs contains at least one error the span status is set to Error.
func RecordSpan(span trace.Span, errs ...schemaerrors.ValidationError) {
	if span == nil {
		return
	}

	count := 0
	for _, err := range errs {
		if err == nil {
			continue
		}
		count++
		k := err.Kind()
		span.AddEvent(EventValidationError, trace.WithAttributes(
			AttrKind.String(k.String()),
			AttrCategory.String(string(k.Category())),
			AttrReference.String(err.Reference().String()),
		))
	}

	span.SetAttributes(AttrErrorCount.Int(count))
	switch count {
	case 0:
		span.SetStatus(codes.Ok, "")
	case 1:
		span.SetStatus(codes.Error, "1 validation error")
	default:
		span.SetStatus(codes.Error, fmt.Sprintf("%d validation errors", count))
	}
}
