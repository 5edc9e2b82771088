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

// Package errors defines the error taxonomy of a schema validator.
//
// Every failed check is reported as exactly one ValidationError. The concrete
// type of the error tells which check failed (TypeMismatch, MissingRequiredKeys,
// PatternMismatch, ...) and carries the payload needed to explain it: the
// offending Value, the expected constraint, and the Reference locating the
// failure in the validated document. Error renders a stable, single-line
// message from that payload alone.
//
// Validation steps return a Result, which holds either the validated value or
// one ValidationError. Validators that report every failure collect them in a
// List; Describe and NewProblem turn errors into serializable views for CLIs
// and HTTP handlers.
package errors
