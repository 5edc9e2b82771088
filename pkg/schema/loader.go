package schema

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Format is the encoding of a schema or document file.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data into the JSON data model used by the validator:
// objects are map[string]any and numbers are json.Number, so integers keep
// their exact form in diagnostics.
func Decode(data []byte, format Format) (any, error) {
	if format == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, schemaerrors.Wrap(err, "converting YAML to JSON")
		}
		data = converted
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, schemaerrors.Wrap(err, "parsing JSON")
	}
	return doc, nil
}

// LoadFile reads and decodes the file at path.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, schemaerrors.Wrap(err, path)
	}
	return doc, nil
}

// Normalize converts an arbitrary Go value into the validator's data model
// by round-tripping it through JSON.
func Normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, schemaerrors.Wrap(err, "marshaling instance")
	}
	return Decode(data, FormatJSON)
}
