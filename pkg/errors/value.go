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
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ValueKind is the semantic type of an offending value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBoolean
	ValueInteger
	ValueFloat
	ValueString
	ValueArray
	ValueObject
	// ValueOther holds values that could not be mapped onto the JSON data model.
	ValueOther
)

var valueKindNames = [...]string{
	ValueNull:    "Null",
	ValueBoolean: "Boolean",
	ValueInteger: "Integer",
	ValueFloat:   "Float",
	ValueString:  "String",
	ValueArray:   "Array",
	ValueObject:  "Object",
	ValueOther:   "Other",
}

// String returns the type name used in diagnostics.
func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return "Other"
	}
	return valueKindNames[k]
}

// Value is an immutable snapshot of a validated data object.
//
// ValueOf copies its input into the JSON data model (nil, bool, json.Number,
// string, []any, map[string]any), so the snapshot stays stable even if the
// validator keeps mutating the document it came from.
type Value struct {
	kind   ValueKind
	data   any
	goType string
}

// ValueOf snapshots v.
func ValueOf(v any) Value {
	if snap, ok := v.(Value); ok {
		return snap
	}
	data, kind, ok := normalize(v)
	if !ok {
		return Value{kind: ValueOther, data: fmt.Sprint(v), goType: fmt.Sprintf("%T", v)}
	}
	return Value{kind: kind, data: data}
}

// Kind returns the semantic type of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// TypeName returns the name substituted for the received type in
// type mismatch messages, e.g. "Integer" or "Object".
func (v Value) TypeName() string {
	if v.kind == ValueOther && v.goType != "" {
		return v.goType
	}
	return v.kind.String()
}

// Interface returns a fresh deep copy of the snapshot. Numbers are returned
// as json.Number.
func (v Value) Interface() any {
	return deepCopy(v.data)
}

// String renders the value on a single line. Strings are returned as-is with
// line breaks escaped; arrays and objects are rendered as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case ValueNull:
		return "null"
	case ValueBoolean:
		return strconv.FormatBool(v.data.(bool))
	case ValueInteger, ValueFloat:
		return string(v.data.(json.Number))
	case ValueString:
		return singleLine(v.data.(string))
	case ValueArray, ValueObject:
		b, err := encodeCompact(v.data)
		if err != nil {
			return singleLine(fmt.Sprint(v.data))
		}
		return string(b)
	default:
		s, _ := v.data.(string)
		return singleLine(s)
	}
}

// MarshalJSON encodes the snapshot as JSON. Values outside the JSON data
// model are encoded as their string form.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueOther {
		return json.Marshal(v.String())
	}
	b, err := encodeCompact(v.data)
	if err != nil {
		return json.Marshal(v.String())
	}
	return b, nil
}

var lineEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// singleLine escapes CR and LF so free text interpolated into a message
// cannot break it across lines.
func singleLine(s string) string {
	return lineEscaper.Replace(s)
}

func encodeCompact(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// normalize maps v onto the JSON data model. The returned containers are
// always freshly allocated.
func normalize(v any) (any, ValueKind, bool) {
	switch t := v.(type) {
	case nil:
		return nil, ValueNull, true
	case bool:
		return t, ValueBoolean, true
	case string:
		return t, ValueString, true
	case json.Number:
		return normalizeNumber(t)
	case int:
		return integer(int64(t))
	case int8:
		return integer(int64(t))
	case int16:
		return integer(int64(t))
	case int32:
		return integer(int64(t))
	case int64:
		return integer(t)
	case uint:
		return json.Number(strconv.FormatUint(uint64(t), 10)), ValueInteger, true
	case uint8:
		return json.Number(strconv.FormatUint(uint64(t), 10)), ValueInteger, true
	case uint16:
		return json.Number(strconv.FormatUint(uint64(t), 10)), ValueInteger, true
	case uint32:
		return json.Number(strconv.FormatUint(uint64(t), 10)), ValueInteger, true
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), ValueInteger, true
	case float32:
		return float(float64(t), 32)
	case float64:
		return float(t, 64)
	case *big.Int:
		if t == nil {
			return nil, ValueNull, true
		}
		return json.Number(t.String()), ValueInteger, true
	case *big.Rat:
		if t == nil {
			return nil, ValueNull, true
		}
		if t.IsInt() {
			return json.Number(t.Num().String()), ValueInteger, true
		}
		f, _ := t.Float64()
		return float(f, 64)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			n, _, ok := normalize(e)
			if !ok {
				return nil, ValueOther, false
			}
			out[i] = n
		}
		return out, ValueArray, true
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			n, _, ok := normalize(e)
			if !ok {
				return nil, ValueOther, false
			}
			out[k] = n
		}
		return out, ValueObject, true
	default:
		return roundTrip(v)
	}
}

func integer(i int64) (any, ValueKind, bool) {
	return json.Number(strconv.FormatInt(i, 10)), ValueInteger, true
}

// float classifies whole numbers as integers: JSON has a single number type
// and decoders commonly hand back float64 for 42.
func float(f float64, bitSize int) (any, ValueKind, bool) {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		return json.Number(strconv.FormatFloat(f, 'f', -1, bitSize)), ValueInteger, true
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, bitSize)), ValueFloat, true
}

func normalizeNumber(n json.Number) (any, ValueKind, bool) {
	if !strings.ContainsAny(string(n), ".eE") {
		return n, ValueInteger, true
	}
	f, err := n.Float64()
	if err != nil {
		return n, ValueFloat, true
	}
	return float(f, 64)
}

// roundTrip snapshots arbitrary Go values (structs, typed slices and maps,
// pointers) through their JSON encoding.
func roundTrip(v any) (any, ValueKind, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, ValueOther, false
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, ValueOther, false
	}
	return normalize(out)
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	default:
		return t
	}
}
