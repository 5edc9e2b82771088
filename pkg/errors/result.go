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

// Result is the outcome of one validation check: either the validated value
// or exactly one ValidationError.
//
// The zero Result is a success holding the zero value of T.
type Result[T any] struct {
	value T
	err   ValidationError
}

// Ok returns a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail returns a failed Result. It panics if err is nil: a failure without an
// error is a programming mistake in the caller.
func Fail[T any](err ValidationError) Result[T] {
	if err == nil {
		panic("errors: Fail called with nil ValidationError")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the check succeeded.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the validated value and true on success, or the zero value
// and false on failure.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() ValidationError {
	return r.err
}

// Get returns the result in Go's (value, error) form.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// SchemaDescriptor is the view of a schema node that BuildErrorResult needs.
type SchemaDescriptor interface {
	// ExpectedType is the type the schema declares, e.g. "string".
	ExpectedType() string

	// Reference locates the schema node.
	Reference() Reference
}

// BuildErrorResult returns the failed Result for a bare type check: a
// TypeMismatch carrying value and the schema's expected type and reference.
func BuildErrorResult(value any, schema SchemaDescriptor) Result[any] {
	return Fail[any](NewTypeMismatch(value, schema.ExpectedType(), schema.Reference()))
}
