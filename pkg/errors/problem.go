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
	"net/http"
)

// Problem is an RFC 9457 problem details body describing a failed validation,
// for HTTP layers that answer invalid requests directly.
type Problem struct {
	// Type is a URI identifying the problem type.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Title is the status text of Status.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Status is the highest HTTP status among the errors' kinds.
	Status int `json:"status,omitempty" yaml:"status,omitempty"`

	// Detail is the message of a single error, or a count for several.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Instance optionally identifies the request that failed.
	Instance string `json:"instance,omitempty" yaml:"instance,omitempty"`

	// Errors lists every error in order.
	Errors []Detail `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewProblem builds the problem body for list. An empty list yields a plain
// 400 body.
func NewProblem(list List) Problem {
	status := http.StatusBadRequest
	for i, err := range list {
		if s := err.Kind().HTTPStatus(); i == 0 || s > status {
			status = s
		}
	}

	p := Problem{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Errors: list.Details(),
	}

	switch len(list) {
	case 0:
		p.Detail = "validation failed"
	case 1:
		p.Detail = list[0].Error()
	default:
		p.Detail = fmt.Sprintf("%d validation errors", len(list))
	}

	return p
}
