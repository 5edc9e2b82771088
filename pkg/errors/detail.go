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

// Detail is a flat, serializable view of a ValidationError. Only the payload
// fields of the described kind are set.
type Detail struct {
	Kind         Kind     `json:"kind" yaml:"kind"`
	Category     Category `json:"category" yaml:"category"`
	Reference    string   `json:"reference" yaml:"reference"`
	Message      string   `json:"message" yaml:"message"`
	Value        *Value   `json:"value,omitempty" yaml:"value,omitempty"`
	ValueType    string   `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	ExpectedType string   `json:"expected_type,omitempty" yaml:"expected_type,omitempty"`
	Keys         []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Pattern      string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Key          string   `json:"key,omitempty" yaml:"key,omitempty"`
	MappedSchema string   `json:"mapped_schema,omitempty" yaml:"mapped_schema,omitempty"`
}

// Describe builds the Detail of err.
func Describe(err ValidationError) Detail {
	d := Detail{
		Kind:      err.Kind(),
		Category:  err.Kind().Category(),
		Reference: err.Reference().String(),
		Message:   err.Error(),
	}

	switch e := err.(type) {
	case TypeMismatch:
		d.withValue(e.Value)
		d.ExpectedType = e.ExpectedType
	case NullNotAllowed, StatusCodeUndefined, ContentTypeUndefined:
	case MissingRequiredKeys:
		d.Keys = append([]string(nil), e.Keys...)
	case UnknownProperties:
		d.Keys = append([]string(nil), e.Keys...)
	case DiscriminatorMappingMissing:
		d.MappedSchema = e.MappedSchema
	case DiscriminatorPropertyMissing:
		d.Key = e.Key
		d.withValue(e.Value)
	case PatternMismatch:
		d.withValue(e.Value)
		d.Pattern = e.Pattern
	case NotOneOf:
		d.withValue(e.Value)
	case NotAnyOf:
		d.withValue(e.Value)
	case EnumMismatch:
		d.withValue(e.Value)
	case LessThanMinimum:
		d.withValue(e.Value)
	case LessThanExclusiveMinimum:
		d.withValue(e.Value)
	case MoreThanMaximum:
		d.withValue(e.Value)
	case MoreThanExclusiveMaximum:
		d.withValue(e.Value)
	case InvalidEmailFormat:
		d.withValue(e.Value)
	case MaxLengthExceeded:
		d.withValue(e.Value)
	case MinLengthViolated:
		d.withValue(e.Value)
	case MaxItemsExceeded:
		d.withValue(e.Value)
	case MinItemsViolated:
		d.withValue(e.Value)
	}

	return d
}

func (d *Detail) withValue(v Value) {
	d.Value = &v
	d.ValueType = v.TypeName()
}

// MarshalYAML encodes the snapshot with its JSON data model.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.kind == ValueOther {
		return v.String(), nil
	}
	return v.Interface(), nil
}
