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
	"testing"

	"github.com/stretchr/testify/assert"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

func TestReference_Append(t *testing.T) {
	r1 := schemaerrors.ParseReference("#/components/schemas")
	r2 := r1.Append("Pet")
	r3 := r1.Append("Order")

	assert.Equal(t, "#/components/schemas", r1.String(), "receiver must not change")
	assert.Equal(t, r1.String()+schemaerrors.Separator+"Pet", r2.String())
	assert.Equal(t, "#/components/schemas/Order", r3.String())
	assert.Equal(t, 3, r1.Len())
	assert.Equal(t, 4, r2.Len())
}

func TestReference_AppendIndex(t *testing.T) {
	r := schemaerrors.RootReference().Append("tags").AppendIndex(2)
	assert.Equal(t, "#/tags/2", r.String())
}

func TestReference_Zero(t *testing.T) {
	var r schemaerrors.Reference

	assert.True(t, r.IsZero())
	assert.Equal(t, "", r.String())
	assert.Empty(t, r.Segments())
	assert.Equal(t, "#", r.Append("#").String())
	assert.Equal(t, "s", r.Append("s").String(), "zero reference appends without a leading separator")
	assert.Equal(t, 1, r.Append("s").Len())
	assert.True(t, schemaerrors.ParseReference("").IsZero())
}

func TestReference_StringEscapesLineBreaks(t *testing.T) {
	r := schemaerrors.RootReference().Append("a\nb").Append("c\rd")

	assert.Equal(t, `#/a\nb/c\rd`, r.String())
	assert.Equal(t, []string{"#", "a\nb", "c\rd"}, r.Segments(), "segments keep the raw tokens")
}

func TestReference_Segments(t *testing.T) {
	r := schemaerrors.NewReference("#", "paths", "/pets", "get")

	segs := r.Segments()
	assert.Equal(t, []string{"#", "paths", "/pets", "get"}, segs)

	segs[0] = "changed"
	assert.Equal(t, "#", r.Segments()[0], "Segments must return a copy")
}

func TestReference_Pointer(t *testing.T) {
	tests := []struct {
		name string
		ref  schemaerrors.Reference
		want string
	}{
		{
			name: "plain",
			ref:  schemaerrors.NewReference("#", "definitions", "Pet"),
			want: "#/definitions/Pet",
		},
		{
			name: "slash in segment",
			ref:  schemaerrors.NewReference("#", "paths", "/pets/{id}"),
			want: "#/paths/~1pets~1{id}",
		},
		{
			name: "tilde in segment",
			ref:  schemaerrors.NewReference("#", "a~b"),
			want: "#/a~0b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.Pointer())
		})
	}
}

func TestReference_Equal(t *testing.T) {
	a := schemaerrors.ParseReference("#/a/b")
	b := schemaerrors.RootReference().Append("a").Append("b")

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(a.Parent()))
	assert.False(t, a.Equal(schemaerrors.ParseReference("#/a/c")))
	assert.True(t, schemaerrors.Reference{}.Equal(schemaerrors.Reference{}))
}

func TestReference_Parent(t *testing.T) {
	r := schemaerrors.ParseReference("#/a/b")

	assert.Equal(t, "#/a", r.Parent().String())
	assert.True(t, schemaerrors.Reference{}.Parent().IsZero())
}

func TestReference_MarshalText(t *testing.T) {
	b, err := schemaerrors.ParseReference("#/a").MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "#/a", string(b))
}
