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
	"fmt"
	"slices"
	"strings"
)

// ValidationError is a single failed check. The concrete type identifies the
// Kind and carries exactly that kind's payload; callers switch on it to get
// at the payload without parsing the message:
//
//	switch e := err.(type) {
//	case errors.MissingRequiredKeys:
//	    respond422(e.Keys)
//	case errors.TypeMismatch:
//	    respond400(e.Error())
//	}
//
// The interface is sealed; values are built with the New* constructors and
// are never modified afterwards.
type ValidationError interface {
	error
	ErrorClassifier

	// Kind returns the failure category.
	Kind() Kind

	// Reference returns the location of the failure.
	Reference() Reference

	validationError()
}

// base carries the state every kind shares.
type base struct {
	kind Kind
	ref  Reference
}

func (b base) Kind() Kind           { return b.kind }
func (b base) Reference() Reference { return b.ref }
func (base) validationError()       {}

// ErrorType implements ErrorClassifier with the kind's category name.
func (b base) ErrorType() string { return string(b.kind.Category()) }

// IsRetryable implements ErrorClassifier. Validation failures are facts about
// the input and never succeed on retry.
func (base) IsRetryable() bool { return false }

// TypeMismatch reports a value whose type differs from the one the schema declares.
type TypeMismatch struct {
	base
	Value        Value
	ExpectedType string
}

// NewTypeMismatch creates a TypeMismatch.
func NewTypeMismatch(value any, expectedType string, ref Reference) TypeMismatch {
	return TypeMismatch{base: base{KindTypeMismatch, ref}, Value: ValueOf(value), ExpectedType: expectedType}
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("%s expected %s, but received %s: %s", e.ref, singleLine(e.ExpectedType), e.Value.TypeName(), e.Value)
}

// NullNotAllowed reports a null where the schema is not nullable.
type NullNotAllowed struct {
	base
}

// NewNullNotAllowed creates a NullNotAllowed.
func NewNullNotAllowed(ref Reference) NullNotAllowed {
	return NullNotAllowed{base{KindNullNotAllowed, ref}}
}

func (e NullNotAllowed) Error() string {
	return fmt.Sprintf("%s does not allow null values", e.ref)
}

// MissingRequiredKeys reports required properties absent from an object.
// Keys keeps the order the validator supplied.
type MissingRequiredKeys struct {
	base
	Keys []string
}

// NewMissingRequiredKeys creates a MissingRequiredKeys. keys is copied.
func NewMissingRequiredKeys(keys []string, ref Reference) MissingRequiredKeys {
	return MissingRequiredKeys{base: base{KindMissingRequiredKeys, ref}, Keys: slices.Clone(keys)}
}

func (e MissingRequiredKeys) Error() string {
	return fmt.Sprintf("%s missing required parameters: %s", e.ref, singleLine(strings.Join(e.Keys, ", ")))
}

// UnknownProperties reports object members the schema does not declare.
type UnknownProperties struct {
	base
	Keys []string
}

// NewUnknownProperties creates an UnknownProperties. keys is copied.
func NewUnknownProperties(keys []string, ref Reference) UnknownProperties {
	return UnknownProperties{base: base{KindUnknownProperties, ref}, Keys: slices.Clone(keys)}
}

func (e UnknownProperties) Error() string {
	return fmt.Sprintf("%s does not define properties: %s", e.ref, singleLine(strings.Join(e.Keys, ", ")))
}

// DiscriminatorMappingMissing reports a discriminator mapping that points at
// a schema which does not exist.
type DiscriminatorMappingMissing struct {
	base
	MappedSchema string
}

// NewDiscriminatorMappingMissing creates a DiscriminatorMappingMissing.
func NewDiscriminatorMappingMissing(mappedSchema string, ref Reference) DiscriminatorMappingMissing {
	return DiscriminatorMappingMissing{base: base{KindDiscriminatorMappingMissing, ref}, MappedSchema: mappedSchema}
}

func (e DiscriminatorMappingMissing) Error() string {
	return fmt.Sprintf("discriminator mapped schema %s does not exist in %s", singleLine(e.MappedSchema), e.ref)
}

// DiscriminatorPropertyMissing reports a value lacking the discriminator property.
type DiscriminatorPropertyMissing struct {
	base
	Key   string
	Value Value
}

// NewDiscriminatorPropertyMissing creates a DiscriminatorPropertyMissing.
func NewDiscriminatorPropertyMissing(key string, value any, ref Reference) DiscriminatorPropertyMissing {
	return DiscriminatorPropertyMissing{base: base{KindDiscriminatorPropertyMissing, ref}, Key: key, Value: ValueOf(value)}
}

func (e DiscriminatorPropertyMissing) Error() string {
	return fmt.Sprintf("discriminator propertyName %s does not exist in value %s in %s", singleLine(e.Key), e.Value, e.ref)
}

// NotOneOf reports a value that does not match exactly one oneOf subschema.
type NotOneOf struct {
	base
	Value Value
}

// NewNotOneOf creates a NotOneOf.
func NewNotOneOf(value any, ref Reference) NotOneOf {
	return NotOneOf{base: base{KindNotOneOf, ref}, Value: ValueOf(value)}
}

func (e NotOneOf) Error() string {
	return fmt.Sprintf("%s isn't one of in %s", e.Value, e.ref)
}

// NotAnyOf reports a value that matches none of the anyOf subschemas.
type NotAnyOf struct {
	base
	Value Value
}

// NewNotAnyOf creates a NotAnyOf.
func NewNotAnyOf(value any, ref Reference) NotAnyOf {
	return NotAnyOf{base: base{KindNotAnyOf, ref}, Value: ValueOf(value)}
}

func (e NotAnyOf) Error() string {
	return fmt.Sprintf("%s isn't any of in %s", e.Value, e.ref)
}

// EnumMismatch reports a value outside the schema's enum.
type EnumMismatch struct {
	base
	Value Value
}

// NewEnumMismatch creates an EnumMismatch.
func NewEnumMismatch(value any, ref Reference) EnumMismatch {
	return EnumMismatch{base: base{KindEnumMismatch, ref}, Value: ValueOf(value)}
}

func (e EnumMismatch) Error() string {
	return fmt.Sprintf("%s isn't include enum in %s", e.Value, e.ref)
}

// LessThanMinimum reports a number below an inclusive minimum.
type LessThanMinimum struct {
	base
	Value Value
}

// NewLessThanMinimum creates a LessThanMinimum.
func NewLessThanMinimum(value any, ref Reference) LessThanMinimum {
	return LessThanMinimum{base: base{KindLessThanMinimum, ref}, Value: ValueOf(value)}
}

func (e LessThanMinimum) Error() string {
	return fmt.Sprintf("%s cannot be less than minimum value in %s", e.Value, e.ref)
}

// LessThanExclusiveMinimum reports a number at or below an exclusive minimum.
type LessThanExclusiveMinimum struct {
	base
	Value Value
}

// NewLessThanExclusiveMinimum creates a LessThanExclusiveMinimum.
func NewLessThanExclusiveMinimum(value any, ref Reference) LessThanExclusiveMinimum {
	return LessThanExclusiveMinimum{base: base{KindLessThanExclusiveMinimum, ref}, Value: ValueOf(value)}
}

func (e LessThanExclusiveMinimum) Error() string {
	return fmt.Sprintf("%s cannot be less than or equal to exclusive minimum value in %s", e.Value, e.ref)
}

// MoreThanMaximum reports a number above an inclusive maximum.
type MoreThanMaximum struct {
	base
	Value Value
}

// NewMoreThanMaximum creates a MoreThanMaximum.
func NewMoreThanMaximum(value any, ref Reference) MoreThanMaximum {
	return MoreThanMaximum{base: base{KindMoreThanMaximum, ref}, Value: ValueOf(value)}
}

func (e MoreThanMaximum) Error() string {
	return fmt.Sprintf("%s cannot be more than maximum value in %s", e.Value, e.ref)
}

// MoreThanExclusiveMaximum reports a number at or above an exclusive maximum.
type MoreThanExclusiveMaximum struct {
	base
	Value Value
}

// NewMoreThanExclusiveMaximum creates a MoreThanExclusiveMaximum.
func NewMoreThanExclusiveMaximum(value any, ref Reference) MoreThanExclusiveMaximum {
	return MoreThanExclusiveMaximum{base: base{KindMoreThanExclusiveMaximum, ref}, Value: ValueOf(value)}
}

func (e MoreThanExclusiveMaximum) Error() string {
	return fmt.Sprintf("%s cannot be more than or equal to exclusive maximum value in %s", e.Value, e.ref)
}

// PatternMismatch reports a string that does not match the schema pattern.
type PatternMismatch struct {
	base
	Value   Value
	Pattern string
}

// NewPatternMismatch creates a PatternMismatch.
func NewPatternMismatch(value any, pattern string, ref Reference) PatternMismatch {
	return PatternMismatch{base: base{KindPatternMismatch, ref}, Value: ValueOf(value), Pattern: pattern}
}

func (e PatternMismatch) Error() string {
	return fmt.Sprintf("%s pattern %s does not match value: %s", e.ref, singleLine(e.Pattern), e.Value)
}

// InvalidEmailFormat reports a string that is not an email address.
type InvalidEmailFormat struct {
	base
	Value Value
}

// NewInvalidEmailFormat creates an InvalidEmailFormat.
func NewInvalidEmailFormat(value any, ref Reference) InvalidEmailFormat {
	return InvalidEmailFormat{base: base{KindInvalidEmailFormat, ref}, Value: ValueOf(value)}
}

func (e InvalidEmailFormat) Error() string {
	return fmt.Sprintf("%s email address format does not match value: %s", e.ref, e.Value)
}

// StatusCodeUndefined reports a response status with no definition.
type StatusCodeUndefined struct {
	base
}

// NewStatusCodeUndefined creates a StatusCodeUndefined.
func NewStatusCodeUndefined(ref Reference) StatusCodeUndefined {
	return StatusCodeUndefined{base{KindStatusCodeUndefined, ref}}
}

func (e StatusCodeUndefined) Error() string {
	return fmt.Sprintf("%s status code definition does not exist", e.ref)
}

// ContentTypeUndefined reports a response content type with no definition.
type ContentTypeUndefined struct {
	base
}

// NewContentTypeUndefined creates a ContentTypeUndefined.
func NewContentTypeUndefined(ref Reference) ContentTypeUndefined {
	return ContentTypeUndefined{base{KindContentTypeUndefined, ref}}
}

func (e ContentTypeUndefined) Error() string {
	return fmt.Sprintf("%s response definition does not exist", e.ref)
}

// MaxLengthExceeded reports a string longer than maxLength.
type MaxLengthExceeded struct {
	base
	Value Value
}

// NewMaxLengthExceeded creates a MaxLengthExceeded.
func NewMaxLengthExceeded(value any, ref Reference) MaxLengthExceeded {
	return MaxLengthExceeded{base: base{KindMaxLengthExceeded, ref}, Value: ValueOf(value)}
}

func (e MaxLengthExceeded) Error() string {
	return fmt.Sprintf("%s %s is longer than max length", e.ref, e.Value)
}

// MinLengthViolated reports a string shorter than minLength.
type MinLengthViolated struct {
	base
	Value Value
}

// NewMinLengthViolated creates a MinLengthViolated.
func NewMinLengthViolated(value any, ref Reference) MinLengthViolated {
	return MinLengthViolated{base: base{KindMinLengthViolated, ref}, Value: ValueOf(value)}
}

func (e MinLengthViolated) Error() string {
	return fmt.Sprintf("%s %s is shorter than min length", e.ref, e.Value)
}

// MaxItemsExceeded reports an array with more than maxItems elements.
type MaxItemsExceeded struct {
	base
	Value Value
}

// NewMaxItemsExceeded creates a MaxItemsExceeded.
func NewMaxItemsExceeded(value any, ref Reference) MaxItemsExceeded {
	return MaxItemsExceeded{base: base{KindMaxItemsExceeded, ref}, Value: ValueOf(value)}
}

func (e MaxItemsExceeded) Error() string {
	return fmt.Sprintf("%s %s contains more than max items", e.ref, e.Value)
}

// MinItemsViolated reports an array with fewer than minItems elements.
type MinItemsViolated struct {
	base
	Value Value
}

// NewMinItemsViolated creates a MinItemsViolated.
func NewMinItemsViolated(value any, ref Reference) MinItemsViolated {
	return MinItemsViolated{base: base{KindMinItemsViolated, ref}, Value: ValueOf(value)}
}

func (e MinItemsViolated) Error() string {
	return fmt.Sprintf("%s %s contains fewer than min items", e.ref, e.Value)
}
