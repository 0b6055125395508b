// Package document loads JSON and YAML files into the arbitrary value trees
// the differ and reconciler operate on.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the document at path. JSON is the default; files
// ending in .yaml or .yml are parsed as YAML. Inputs that cannot be read or
// parsed fail outright with no partial result.
func Load(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return doc, nil
	default:
		doc, err := ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return doc, nil
	}
}

// ParseJSON parses a JSON document into an arbitrary value tree.
func ParseJSON(data []byte) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return doc, nil
}

// ParseYAML parses a YAML document into the same tree shape the JSON parser
// produces, so documents in either format can be compared against each other.
func ParseYAML(data []byte) (interface{}, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return normalize(doc), nil
}

// normalize rewrites any non-string mapping keys YAML allows into strings so
// the differ only ever sees map[string]interface{} nodes.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for key, item := range val {
			out[key] = normalize(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for key, item := range val {
			out[fmt.Sprintf("%v", key)] = normalize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
