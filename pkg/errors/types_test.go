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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

func allKinds(ref schemaerrors.Reference) []schemaerrors.ValidationError {
	return []schemaerrors.ValidationError{
		schemaerrors.NewTypeMismatch(42, "string", ref),
		schemaerrors.NewNullNotAllowed(ref),
		schemaerrors.NewMissingRequiredKeys([]string{"id", "name"}, ref),
		schemaerrors.NewUnknownProperties([]string{"extra"}, ref),
		schemaerrors.NewDiscriminatorMappingMissing("#/components/schemas/Cat", ref),
		schemaerrors.NewDiscriminatorPropertyMissing("petType", map[string]any{}, ref),
		schemaerrors.NewNotOneOf("x", ref),
		schemaerrors.NewNotAnyOf("x", ref),
		schemaerrors.NewEnumMismatch("purple", ref),
		schemaerrors.NewLessThanMinimum(1, ref),
		schemaerrors.NewLessThanExclusiveMinimum(5, ref),
		schemaerrors.NewMoreThanMaximum(11, ref),
		schemaerrors.NewMoreThanExclusiveMaximum(10, ref),
		schemaerrors.NewPatternMismatch("abc", "^[0-9]+$", ref),
		schemaerrors.NewInvalidEmailFormat("nope", ref),
		schemaerrors.NewStatusCodeUndefined(ref),
		schemaerrors.NewContentTypeUndefined(ref),
		schemaerrors.NewMaxLengthExceeded("abcdef", ref),
		schemaerrors.NewMinLengthViolated("a", ref),
		schemaerrors.NewMaxItemsExceeded([]any{1, 2, 3}, ref),
		schemaerrors.NewMinItemsViolated([]any{}, ref),
	}
}

func TestValidationError_Error(t *testing.T) {
	ref := schemaerrors.ParseReference("#/components/schemas/Pet")

	tests := []struct {
		name    string
		err     schemaerrors.ValidationError
		kind    schemaerrors.Kind
		wantMsg string
	}{
		{
			name:    "type mismatch",
			err:     schemaerrors.NewTypeMismatch(42, "string", schemaerrors.ParseReference("#/foo")),
			kind:    schemaerrors.KindTypeMismatch,
			wantMsg: "#/foo expected string, but received Integer: 42",
		},
		{
			name:    "type mismatch with float",
			err:     schemaerrors.NewTypeMismatch(4.5, "integer", ref),
			kind:    schemaerrors.KindTypeMismatch,
			wantMsg: "#/components/schemas/Pet expected integer, but received Float: 4.5",
		},
		{
			name:    "type mismatch with object",
			err:     schemaerrors.NewTypeMismatch(map[string]any{"a": 1}, "array", ref),
			kind:    schemaerrors.KindTypeMismatch,
			wantMsg: `#/components/schemas/Pet expected array, but received Object: {"a":1}`,
		},
		{
			name:    "null not allowed",
			err:     schemaerrors.NewNullNotAllowed(ref),
			kind:    schemaerrors.KindNullNotAllowed,
			wantMsg: "#/components/schemas/Pet does not allow null values",
		},
		{
			name:    "missing required keys",
			err:     schemaerrors.NewMissingRequiredKeys([]string{"id", "name"}, schemaerrors.ParseReference("#/Pet")),
			kind:    schemaerrors.KindMissingRequiredKeys,
			wantMsg: "#/Pet missing required parameters: id, name",
		},
		{
			name:    "missing required keys empty",
			err:     schemaerrors.NewMissingRequiredKeys(nil, schemaerrors.ParseReference("#/Pet")),
			kind:    schemaerrors.KindMissingRequiredKeys,
			wantMsg: "#/Pet missing required parameters: ",
		},
		{
			name:    "unknown properties",
			err:     schemaerrors.NewUnknownProperties([]string{"color", "age"}, ref),
			kind:    schemaerrors.KindUnknownProperties,
			wantMsg: "#/components/schemas/Pet does not define properties: color, age",
		},
		{
			name:    "discriminator mapping missing",
			err:     schemaerrors.NewDiscriminatorMappingMissing("#/components/schemas/Cat", ref),
			kind:    schemaerrors.KindDiscriminatorMappingMissing,
			wantMsg: "discriminator mapped schema #/components/schemas/Cat does not exist in #/components/schemas/Pet",
		},
		{
			name:    "discriminator property missing",
			err:     schemaerrors.NewDiscriminatorPropertyMissing("petType", map[string]any{}, schemaerrors.ParseReference("#/Pet")),
			kind:    schemaerrors.KindDiscriminatorPropertyMissing,
			wantMsg: "discriminator propertyName petType does not exist in value {} in #/Pet",
		},
		{
			name:    "not one of",
			err:     schemaerrors.NewNotOneOf("x", ref),
			kind:    schemaerrors.KindNotOneOf,
			wantMsg: "x isn't one of in #/components/schemas/Pet",
		},
		{
			name:    "not any of",
			err:     schemaerrors.NewNotAnyOf([]any{"a", 1}, ref),
			kind:    schemaerrors.KindNotAnyOf,
			wantMsg: `["a",1] isn't any of in #/components/schemas/Pet`,
		},
		{
			name:    "enum mismatch",
			err:     schemaerrors.NewEnumMismatch("purple", ref),
			kind:    schemaerrors.KindEnumMismatch,
			wantMsg: "purple isn't include enum in #/components/schemas/Pet",
		},
		{
			name:    "less than minimum",
			err:     schemaerrors.NewLessThanMinimum(1, schemaerrors.ParseReference("#/age")),
			kind:    schemaerrors.KindLessThanMinimum,
			wantMsg: "1 cannot be less than minimum value in #/age",
		},
		{
			name:    "less than exclusive minimum",
			err:     schemaerrors.NewLessThanExclusiveMinimum(5, schemaerrors.ParseReference("#/age")),
			kind:    schemaerrors.KindLessThanExclusiveMinimum,
			wantMsg: "5 cannot be less than or equal to exclusive minimum value in #/age",
		},
		{
			name:    "more than maximum",
			err:     schemaerrors.NewMoreThanMaximum(11, schemaerrors.ParseReference("#/age")),
			kind:    schemaerrors.KindMoreThanMaximum,
			wantMsg: "11 cannot be more than maximum value in #/age",
		},
		{
			name:    "more than exclusive maximum",
			err:     schemaerrors.NewMoreThanExclusiveMaximum(10.5, schemaerrors.ParseReference("#/age")),
			kind:    schemaerrors.KindMoreThanExclusiveMaximum,
			wantMsg: "10.5 cannot be more than or equal to exclusive maximum value in #/age",
		},
		{
			name:    "pattern mismatch",
			err:     schemaerrors.NewPatternMismatch("abc", "^[0-9]+$", schemaerrors.ParseReference("#/code")),
			kind:    schemaerrors.KindPatternMismatch,
			wantMsg: "#/code pattern ^[0-9]+$ does not match value: abc",
		},
		{
			name:    "invalid email format",
			err:     schemaerrors.NewInvalidEmailFormat("nope", schemaerrors.ParseReference("#/email")),
			kind:    schemaerrors.KindInvalidEmailFormat,
			wantMsg: "#/email email address format does not match value: nope",
		},
		{
			name:    "status code undefined",
			err:     schemaerrors.NewStatusCodeUndefined(schemaerrors.ParseReference("#/paths/~1pets/get/responses")),
			kind:    schemaerrors.KindStatusCodeUndefined,
			wantMsg: "#/paths/~1pets/get/responses status code definition does not exist",
		},
		{
			name:    "content type undefined",
			err:     schemaerrors.NewContentTypeUndefined(schemaerrors.ParseReference("#/paths/~1pets/get/responses/200")),
			kind:    schemaerrors.KindContentTypeUndefined,
			wantMsg: "#/paths/~1pets/get/responses/200 response definition does not exist",
		},
		{
			name:    "max length exceeded",
			err:     schemaerrors.NewMaxLengthExceeded("abcdef", schemaerrors.ParseReference("#/name")),
			kind:    schemaerrors.KindMaxLengthExceeded,
			wantMsg: "#/name abcdef is longer than max length",
		},
		{
			name:    "min length violated",
			err:     schemaerrors.NewMinLengthViolated("a", schemaerrors.ParseReference("#/name")),
			kind:    schemaerrors.KindMinLengthViolated,
			wantMsg: "#/name a is shorter than min length",
		},
		{
			name:    "max items exceeded",
			err:     schemaerrors.NewMaxItemsExceeded([]any{1, 2, 3}, schemaerrors.ParseReference("#/tags")),
			kind:    schemaerrors.KindMaxItemsExceeded,
			wantMsg: "#/tags [1,2,3] contains more than max items",
		},
		{
			name:    "min items violated",
			err:     schemaerrors.NewMinItemsViolated([]any{}, schemaerrors.ParseReference("#/tags")),
			kind:    schemaerrors.KindMinItemsViolated,
			wantMsg: "#/tags [] contains fewer than min items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestValidationError_RenderingProperties(t *testing.T) {
	ref := schemaerrors.RootReference().Append("components").Append("schemas").Append("Pet")

	errs := allKinds(ref)
	require.Len(t, errs, len(schemaerrors.Kinds()), "every kind should be exercised")

	seen := make(map[schemaerrors.Kind]bool)
	for _, err := range errs {
		t.Run(err.Kind().String(), func(t *testing.T) {
			first := err.Error()
			assert.Equal(t, first, err.Error(), "rendering must be deterministic")
			assert.NotEmpty(t, first)
			assert.NotContains(t, first, "\n")
			assert.Contains(t, first, ref.String())
			assert.True(t, err.Reference().Equal(ref))
			assert.Equal(t, string(err.Kind().Category()), err.ErrorType())
			assert.False(t, err.IsRetryable())
		})
		seen[err.Kind()] = true
	}
	assert.Len(t, seen, len(schemaerrors.Kinds()))
}

func TestValidationError_SnapshotsValue(t *testing.T) {
	data := map[string]any{"tags": []any{"a"}}
	err := schemaerrors.NewNotOneOf(data, schemaerrors.ParseReference("#/pet"))

	data["tags"].([]any)[0] = "changed"
	data["name"] = "rex"

	assert.Equal(t, `{"tags":["a"]} isn't one of in #/pet`, err.Error())
}

func TestValidationError_CopiesKeys(t *testing.T) {
	keys := []string{"id", "name"}
	err := schemaerrors.NewMissingRequiredKeys(keys, schemaerrors.ParseReference("#/Pet"))
	keys[0] = "changed"

	assert.Equal(t, []string{"id", "name"}, err.Keys)
}

func TestValidationError_TypeSwitch(t *testing.T) {
	var err error = schemaerrors.NewMissingRequiredKeys([]string{"id"}, schemaerrors.ParseReference("#/Pet"))

	switch e := err.(type) {
	case schemaerrors.MissingRequiredKeys:
		assert.Equal(t, []string{"id"}, e.Keys)
		assert.Equal(t, "#/Pet", e.Reference().String())
	default:
		t.Fatalf("unexpected type %T", err)
	}
}

func TestValidationError_SingleLineValue(t *testing.T) {
	err := schemaerrors.NewPatternMismatch("line1\nline2", "^x$", schemaerrors.ParseReference("#/note"))
	msg := err.Error()
	assert.False(t, strings.Contains(msg, "\n"))
	assert.Equal(t, `#/note pattern ^x$ does not match value: line1\nline2`, msg)
}

func TestValidationError_SingleLinePayload(t *testing.T) {
	ref := schemaerrors.ParseReference("#/Pet")

	tests := []struct {
		name string
		err  schemaerrors.ValidationError
		want string
	}{
		{
			name: "expected type",
			err:  schemaerrors.NewTypeMismatch(1, "str\ning", ref),
			want: `#/Pet expected str\ning, but received Integer: 1`,
		},
		{
			name: "missing keys",
			err:  schemaerrors.NewMissingRequiredKeys([]string{"ok", "a\nb"}, ref),
			want: `#/Pet missing required parameters: ok, a\nb`,
		},
		{
			name: "unknown keys",
			err:  schemaerrors.NewUnknownProperties([]string{"ok", "a\nb"}, ref),
			want: `#/Pet does not define properties: ok, a\nb`,
		},
		{
			name: "mapped schema",
			err:  schemaerrors.NewDiscriminatorMappingMissing("a\nb", ref),
			want: `discriminator mapped schema a\nb does not exist in #/Pet`,
		},
		{
			name: "discriminator key",
			err:  schemaerrors.NewDiscriminatorPropertyMissing("a\nb", "x", ref),
			want: `discriminator propertyName a\nb does not exist in value x in #/Pet`,
		},
		{
			name: "pattern",
			err:  schemaerrors.NewPatternMismatch("x", "a\nb", ref),
			want: `#/Pet pattern a\nb does not match value: x`,
		},
		{
			name: "reference segment",
			err:  schemaerrors.NewNullNotAllowed(ref.Append("a\r\nb")),
			want: `#/Pet/a\r\nb does not allow null values`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if strings.ContainsAny(msg, "\r\n") {
				t.Errorf("message spans lines: %q", msg)
			}
			assert.Equal(t, tt.want, msg)
		})
	}
}
