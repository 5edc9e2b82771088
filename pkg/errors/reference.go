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

package errors

import (
	"strconv"
	"strings"
)

// Separator joins Reference segments when rendered.
const Separator = "/"

// Reference identifies a location inside the schema/document pair being
// validated, e.g. "#/components/schemas/Pet/properties/name".
//
// A Reference is an immutable value. Append returns a new Reference that shares
// the receiver's segments, so references built while descending a document are
// cheap to create and safe to hold after the traversal moves on.
//
// For any non-zero r, r.Append(s).String() equals r.String() + Separator + s.
// The zero Reference has no segments and renders as "". Appending to it yields
// a one-segment Reference that renders as s, with no leading Separator. Start
// from RootReference to address a document.
type Reference struct {
	tail *segment
}

type segment struct {
	parent *segment
	token  string
	depth  int
}

// NewReference builds a Reference from the given segments in order.
func NewReference(segments ...string) Reference {
	var r Reference
	for _, s := range segments {
		r = r.Append(s)
	}
	return r
}

// RootReference returns the document root, rendered as "#".
func RootReference() Reference {
	return NewReference("#")
}

// ParseReference splits a rendered reference on Separator.
// An empty string yields the zero Reference.
func ParseReference(s string) Reference {
	if s == "" {
		return Reference{}
	}
	return NewReference(strings.Split(s, Separator)...)
}

// Append returns a new Reference with token added at the end.
// The receiver is not modified. On the zero Reference the result is the
// single segment token.
func (r Reference) Append(token string) Reference {
	depth := 1
	if r.tail != nil {
		depth = r.tail.depth + 1
	}
	return Reference{tail: &segment{parent: r.tail, token: token, depth: depth}}
}

// AppendIndex appends an array index segment.
func (r Reference) AppendIndex(i int) Reference {
	return r.Append(strconv.Itoa(i))
}

// Parent returns the Reference without its last segment.
func (r Reference) Parent() Reference {
	if r.tail == nil {
		return r
	}
	return Reference{tail: r.tail.parent}
}

// Len returns the number of segments.
func (r Reference) Len() int {
	if r.tail == nil {
		return 0
	}
	return r.tail.depth
}

// IsZero reports whether the Reference has no segments.
func (r Reference) IsZero() bool {
	return r.tail == nil
}

// Segments returns a copy of the segments, root first.
func (r Reference) Segments() []string {
	out := make([]string, r.Len())
	for s := r.tail; s != nil; s = s.parent {
		out[s.depth-1] = s.token
	}
	return out
}

// String renders the segments joined by Separator, with line breaks inside
// segments escaped.
func (r Reference) String() string {
	return singleLine(strings.Join(r.Segments(), Separator))
}

// Pointer renders the Reference with every segment escaped per RFC 6901,
// so segments that contain "/" or "~" survive a round trip.
func (r Reference) Pointer() string {
	segs := r.Segments()
	for i, s := range segs {
		if i == 0 && s == "#" {
			continue
		}
		segs[i] = pointerEscaper.Replace(s)
	}
	return strings.Join(segs, Separator)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Equal reports whether both references have the same segments.
func (r Reference) Equal(other Reference) bool {
	if r.Len() != other.Len() {
		return false
	}
	a, b := r.tail, other.tail
	for a != nil {
		if a == b {
			return true
		}
		if a.token != b.token {
			return false
		}
		a, b = a.parent, b.parent
	}
	return true
}

// MarshalText implements encoding.TextMarshaler.
func (r Reference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
