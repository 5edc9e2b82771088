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
	"errors"
	"fmt"
)

// Wrap creates a new error that wraps the given error with additional context.
// If err is nil, returns nil.
//
// Usage:
//
//	if err := loadSchema(); err != nil {
//	    return errors.Wrap(err, "loading schema")
//	}
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf creates a new error that wraps the given error with formatted context.
// If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// As finds the first error in err's tree that matches target type,
// and if one is found, sets target to that error value and returns true.
// This is a convenience wrapper around errors.As from the standard library.
//
// Usage:
//
//	var missing errors.MissingRequiredKeys
//	if errors.As(err, &missing) {
//	    log.Printf("missing keys: %v", missing.Keys)
//	}
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// AsValidationError finds the first ValidationError in err's tree.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// KindOf returns the Kind of the first ValidationError in err's tree.
func KindOf(err error) (Kind, bool) {
	verr, ok := AsValidationError(err)
	if !ok {
		return 0, false
	}
	return verr.Kind(), true
}
