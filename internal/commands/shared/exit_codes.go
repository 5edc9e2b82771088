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

package shared

import (
	"errors"
	"fmt"
	"io"
	"os"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Exit codes for schemaerr commands
const (
	ExitSuccess         = 0
	ExitExecutionFailed = 1
	ExitInvalidDocument = 2
	ExitUsage           = 3
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewExecutionError creates an error for failures unrelated to the
// documents themselves (unreadable files, broken schemas).
func NewExecutionError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitExecutionFailed,
		Message: msg,
		Cause:   cause,
	}
}

// NewInvalidDocumentError creates an error for documents that failed
// validation
func NewInvalidDocumentError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInvalidDocument,
		Message: msg,
		Cause:   cause,
	}
}

// NewUsageError creates an error for bad flags, arguments or configuration
func NewUsageError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: msg,
		Cause:   cause,
	}
}

// ExitCode returns the exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitExecutionFailed
}

// PrintError writes err to w, followed by a suggestion when the error chain
// contains a validation error. Errors with an empty message print nothing.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Message == "" && exitErr.Cause == nil {
		return
	}

	fmt.Fprintln(w, "Error:", err.Error())

	if verr, ok := schemaerrors.AsValidationError(err); ok {
		if suggestion := verr.Kind().Suggestion(); suggestion != "" {
			fmt.Fprintf(w, "\nSuggestion: %s\n", suggestion)
		}
	}
}

// HandleExitError prints err and exits with the matching code
func HandleExitError(err error) {
	if err == nil {
		return
	}
	PrintError(os.Stderr, err)
	os.Exit(ExitCode(err))
}
