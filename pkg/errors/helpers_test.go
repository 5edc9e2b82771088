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

package errors_test

import (
	"errors"
	"strings"
	"testing"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		original := errors.New("original error")
		wrapped := schemaerrors.Wrap(original, "additional context")

		if wrapped == nil {
			t.Fatal("Wrap should not return nil for non-nil error")
		}

		msg := wrapped.Error()
		if !strings.Contains(msg, "additional context") {
			t.Errorf("wrapped error should contain context, got: %s", msg)
		}
		if !strings.Contains(msg, "original error") {
			t.Errorf("wrapped error should contain original message, got: %s", msg)
		}
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		wrapped := schemaerrors.Wrap(nil, "context")
		if wrapped != nil {
			t.Errorf("Wrap(nil, _) should return nil, got: %v", wrapped)
		}
	})

	t.Run("preserves validation error", func(t *testing.T) {
		original := schemaerrors.NewEnumMismatch("red", schemaerrors.ParseReference("#/color"))
		wrapped := schemaerrors.Wrap(original, "request body")

		if !errors.Is(wrapped, original) {
			t.Error("wrapped error should match original with errors.Is")
		}
		var enum schemaerrors.EnumMismatch
		if !schemaerrors.As(wrapped, &enum) {
			t.Fatal("As should find the wrapped EnumMismatch")
		}
		if enum.Reference().String() != "#/color" {
			t.Errorf("As() reference = %q, want %q", enum.Reference(), "#/color")
		}
	})
}

func TestWrapf(t *testing.T) {
	wrapped := schemaerrors.Wrapf(schemaerrors.New("boom"), "loading %s", "pet.yaml")
	if got := wrapped.Error(); got != "loading pet.yaml: boom" {
		t.Errorf("Wrapf() = %q", got)
	}
	if schemaerrors.Wrapf(nil, "loading %s", "x") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestAsValidationError(t *testing.T) {
	verr := schemaerrors.NewNullNotAllowed(schemaerrors.ParseReference("#/name"))

	got, ok := schemaerrors.AsValidationError(schemaerrors.Wrap(verr, "ctx"))
	if !ok {
		t.Fatal("expected a ValidationError")
	}
	if got.Kind() != schemaerrors.KindNullNotAllowed {
		t.Errorf("Kind() = %v", got.Kind())
	}

	var target schemaerrors.NullNotAllowed
	if !schemaerrors.As(schemaerrors.Wrap(verr, "ctx"), &target) {
		t.Error("As should find NullNotAllowed")
	}

	if _, ok := schemaerrors.AsValidationError(errors.New("plain")); ok {
		t.Error("plain errors are not validation errors")
	}
	if _, ok := schemaerrors.KindOf(nil); ok {
		t.Error("KindOf(nil) should report false")
	}
}

func TestErrorClassifier(t *testing.T) {
	var c schemaerrors.ErrorClassifier = schemaerrors.NewInvalidEmailFormat("x", schemaerrors.ParseReference("#/email"))
	if c.ErrorType() != "format" {
		t.Errorf("ErrorType() = %q, want format", c.ErrorType())
	}
	if c.IsRetryable() {
		t.Error("validation errors are not retryable")
	}
}
