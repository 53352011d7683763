//go:build !miniyaml_subset

package miniyaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

const activeBackend = BackendYAML

// parse is a thin pass-through over the full YAML parser. The result is
// normalized to a non-nil document so that empty and comment-only inputs
// behave the same under either backend.
func parse(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("miniyaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
