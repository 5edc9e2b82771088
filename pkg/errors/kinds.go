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

import "net/http"

// Kind identifies one category of validation failure. The set is closed:
// every Kind has exactly one ValidationError implementation in this package.
type Kind int

const (
	KindTypeMismatch Kind = iota + 1
	KindNullNotAllowed
	KindMissingRequiredKeys
	KindUnknownProperties
	KindDiscriminatorMappingMissing
	KindDiscriminatorPropertyMissing
	KindNotOneOf
	KindNotAnyOf
	KindEnumMismatch
	KindLessThanMinimum
	KindLessThanExclusiveMinimum
	KindMoreThanMaximum
	KindMoreThanExclusiveMaximum
	KindPatternMismatch
	KindInvalidEmailFormat
	KindStatusCodeUndefined
	KindContentTypeUndefined
	KindMaxLengthExceeded
	KindMinLengthViolated
	KindMaxItemsExceeded
	KindMinItemsViolated
)

// Category groups kinds by the nature of the failed check.
type Category string

const (
	// CategoryShape covers values of the wrong type or unexpected nulls.
	CategoryShape Category = "shape"
	// CategoryStructural covers missing, unknown or unresolvable object members.
	CategoryStructural Category = "structural"
	// CategorySetMembership covers oneOf, anyOf and enum failures.
	CategorySetMembership Category = "set_membership"
	// CategoryRange covers numeric bounds.
	CategoryRange Category = "range"
	// CategorySize covers string length and array item count bounds.
	CategorySize Category = "size"
	// CategoryFormat covers pattern and format checks.
	CategoryFormat Category = "format"
	// CategoryLookup covers response definitions that could not be found.
	CategoryLookup Category = "lookup"
)

type kindInfo struct {
	name       string
	category   Category
	template   string
	suggestion string
}

var kindTable = map[Kind]kindInfo{
	KindTypeMismatch: {
		name:       "type_mismatch",
		category:   CategoryShape,
		template:   "{reference} expected {expected_type}, but received {type}: {value}",
		suggestion: "Change the value to the type declared by the schema",
	},
	KindNullNotAllowed: {
		name:       "null_not_allowed",
		category:   CategoryShape,
		template:   "{reference} does not allow null values",
		suggestion: "Provide a value or mark the schema as nullable",
	},
	KindMissingRequiredKeys: {
		name:       "missing_required_keys",
		category:   CategoryStructural,
		template:   "{reference} missing required parameters: {keys}",
		suggestion: "Add the listed properties to the object",
	},
	KindUnknownProperties: {
		name:       "unknown_properties",
		category:   CategoryStructural,
		template:   "{reference} does not define properties: {keys}",
		suggestion: "Remove the listed properties or declare them in the schema",
	},
	KindDiscriminatorMappingMissing: {
		name:       "discriminator_mapping_missing",
		category:   CategoryStructural,
		template:   "discriminator mapped schema {mapped_schema} does not exist in {reference}",
		suggestion: "Point the discriminator mapping at an existing schema",
	},
	KindDiscriminatorPropertyMissing: {
		name:       "discriminator_property_missing",
		category:   CategoryStructural,
		template:   "discriminator propertyName {key} does not exist in value {value} in {reference}",
		suggestion: "Include the discriminator property in the value",
	},
	KindNotOneOf: {
		name:       "not_one_of",
		category:   CategorySetMembership,
		template:   "{value} isn't one of in {reference}",
		suggestion: "Make the value match exactly one of the listed schemas",
	},
	KindNotAnyOf: {
		name:       "not_any_of",
		category:   CategorySetMembership,
		template:   "{value} isn't any of in {reference}",
		suggestion: "Make the value match at least one of the listed schemas",
	},
	KindEnumMismatch: {
		name:       "enum_mismatch",
		category:   CategorySetMembership,
		template:   "{value} isn't include enum in {reference}",
		suggestion: "Use one of the values listed in the enum",
	},
	KindLessThanMinimum: {
		name:       "less_than_minimum",
		category:   CategoryRange,
		template:   "{value} cannot be less than minimum value in {reference}",
		suggestion: "Increase the value to at least the minimum",
	},
	KindLessThanExclusiveMinimum: {
		name:       "less_than_exclusive_minimum",
		category:   CategoryRange,
		template:   "{value} cannot be less than or equal to exclusive minimum value in {reference}",
		suggestion: "Increase the value above the exclusive minimum",
	},
	KindMoreThanMaximum: {
		name:       "more_than_maximum",
		category:   CategoryRange,
		template:   "{value} cannot be more than maximum value in {reference}",
		suggestion: "Decrease the value to at most the maximum",
	},
	KindMoreThanExclusiveMaximum: {
		name:       "more_than_exclusive_maximum",
		category:   CategoryRange,
		template:   "{value} cannot be more than or equal to exclusive maximum value in {reference}",
		suggestion: "Decrease the value below the exclusive maximum",
	},
	KindPatternMismatch: {
		name:       "pattern_mismatch",
		category:   CategoryFormat,
		template:   "{reference} pattern {pattern} does not match value: {value}",
		suggestion: "Change the value so it matches the pattern",
	},
	KindInvalidEmailFormat: {
		name:       "invalid_email_format",
		category:   CategoryFormat,
		template:   "{reference} email address format does not match value: {value}",
		suggestion: "Provide a valid email address",
	},
	KindStatusCodeUndefined: {
		name:       "status_code_undefined",
		category:   CategoryLookup,
		template:   "{reference} status code definition does not exist",
		suggestion: "Declare the status code or a default response",
	},
	KindContentTypeUndefined: {
		name:       "content_type_undefined",
		category:   CategoryLookup,
		template:   "{reference} response definition does not exist",
		suggestion: "Declare the content type in the response",
	},
	KindMaxLengthExceeded: {
		name:       "max_length_exceeded",
		category:   CategorySize,
		template:   "{reference} {value} is longer than max length",
		suggestion: "Shorten the value",
	},
	KindMinLengthViolated: {
		name:       "min_length_violated",
		category:   CategorySize,
		template:   "{reference} {value} is shorter than min length",
		suggestion: "Lengthen the value",
	},
	KindMaxItemsExceeded: {
		name:       "max_items_exceeded",
		category:   CategorySize,
		template:   "{reference} {value} contains more than max items",
		suggestion: "Remove items from the array",
	},
	KindMinItemsViolated: {
		name:       "min_items_violated",
		category:   CategorySize,
		template:   "{reference} {value} contains fewer than min items",
		suggestion: "Add items to the array",
	},
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindTable))
	for k := KindTypeMismatch; k <= KindMinItemsViolated; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a Kind up by its String name.
func ParseKind(name string) (Kind, bool) {
	for k, info := range kindTable {
		if info.name == name {
			return k, true
		}
	}
	return 0, false
}

// String returns the snake_case name of the kind, e.g. "type_mismatch".
func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return "unknown"
}

// Category returns the category the kind belongs to.
func (k Kind) Category() Category {
	return kindTable[k].category
}

// Template documents the message layout of the kind with named placeholders.
func (k Kind) Template() string {
	return kindTable[k].template
}

// Suggestion returns actionable guidance for fixing errors of this kind.
func (k Kind) Suggestion() string {
	return kindTable[k].suggestion
}

// HTTPStatus maps the kind onto the status an HTTP layer should answer with.
// Structural and constraint failures are 422, shape failures 400. Lookup
// failures describe a response that the API definition does not cover, so
// they are reported as server errors.
func (k Kind) HTTPStatus() int {
	switch k.Category() {
	case CategoryShape:
		return http.StatusBadRequest
	case CategoryLookup:
		return http.StatusInternalServerError
	case "":
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
