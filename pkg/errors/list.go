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

import "strings"

// List is an ordered collection of validation failures, for validators that
// collect every failure instead of stopping at the first.
type List []ValidationError

// Add appends the non-nil errors.
func (l *List) Add(errs ...ValidationError) {
	for _, err := range errs {
		if err != nil {
			*l = append(*l, err)
		}
	}
}

// Len returns the number of errors.
func (l List) Len() int {
	return len(l)
}

// Error joins the messages of all errors with "; ".
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (l List) Unwrap() []error {
	out := make([]error, len(l))
	for i, err := range l {
		out[i] = err
	}
	return out
}

// ErrorOrNil returns the list as an error, or nil when it is empty.
func (l List) ErrorOrNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Filter returns the errors for which keep returns true, in order.
func (l List) Filter(keep func(ValidationError) bool) List {
	var out List
	for _, err := range l {
		if keep(err) {
			out = append(out, err)
		}
	}
	return out
}

// ByReference groups errors by their rendered Reference.
func (l List) ByReference() map[string]List {
	out := make(map[string]List)
	for _, err := range l {
		key := err.Reference().String()
		out[key] = append(out[key], err)
	}
	return out
}

// Kinds returns the distinct kinds in order of first appearance.
func (l List) Kinds() []Kind {
	seen := make(map[Kind]bool)
	var out []Kind
	for _, err := range l {
		if k := err.Kind(); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Details describes every error in order.
func (l List) Details() []Detail {
	out := make([]Detail, len(l))
	for i, err := range l {
		out[i] = Describe(err)
	}
	return out
}
