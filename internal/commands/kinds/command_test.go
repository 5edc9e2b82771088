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

package kinds

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/schemaerr/internal/commands/shared"
	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"SCHEMAERR_OUTPUT", "SCHEMAERR_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKinds_Text(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Set Membership")
	assert.Contains(t, out, "Structural")
	assert.Contains(t, out, "missing_required_keys")
	assert.Contains(t, out, "{reference} does not allow null values")

	// Every kind is listed once
	for _, k := range schemaerrors.Kinds() {
		assert.Equal(t, 1, strings.Count(out, k.String()+" "), k.String())
	}
}

func TestKinds_JSON(t *testing.T) {
	out, err := execute(t, "--category", "range", "-o", "json")
	require.NoError(t, err)

	var catalog struct {
		Command string  `json:"command"`
		Kinds   []Entry `json:"kinds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))

	assert.Equal(t, "kinds", catalog.Command)
	require.Len(t, catalog.Kinds, 4)
	for _, e := range catalog.Kinds {
		assert.Equal(t, schemaerrors.CategoryRange, e.Category)
		assert.Equal(t, 422, e.Status)
	}
	assert.Equal(t, "less_than_minimum", catalog.Kinds[0].Name)
}

func TestKinds_YAML(t *testing.T) {
	out, err := execute(t, "--category", "lookup", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: status_code_undefined")
	assert.Contains(t, out, "status: 500")
}

func TestKinds_UnknownCategory(t *testing.T) {
	_, err := execute(t, "--category", "nope")
	assert.Equal(t, shared.ExitUsage, shared.ExitCode(err))
}
