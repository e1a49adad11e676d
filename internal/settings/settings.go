// Package settings loads and merges quarry's layered settings documents.
//
// Settings come from two YAML files: a default document shipped with the
// project (settings.yml.example, always present) and an optional user-local
// override document (settings.yml, never committed). The override is merged
// on top of the defaults, later values winning per key.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDocumentPath is the relative path of the shipped default document.
	DefaultDocumentPath = "settings.yml.example"

	// OverrideDocumentPath is the relative path of the optional user override.
	OverrideDocumentPath = "settings.yml"
)

// Document is one parsed settings mapping. Values are the scalars yaml.v3
// produces (string, int, bool, float64, nil).
type Document map[string]any

// Load reads and parses a settings document from a YAML file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// StringValue returns the value for key rendered as a string.
// Non-string scalars are formatted with their YAML representation.
// Returns false when the key is absent, nil, or renders empty.
func StringValue(doc Document, key string) (string, bool) {
	v, ok := doc[key]
	if !ok || v == nil {
		return "", false
	}

	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	if s == "" {
		return "", false
	}

	return s, true
}
