package miniyaml

import (
	"github.com/KimNorgaard/go-miniyaml/internal/parser"
)

// Backend identifies the parser implementation behind Parse.
type Backend string

const (
	// BackendYAML is the pass-through over the full YAML parser.
	BackendYAML Backend = "go-yaml"

	// BackendSubset is the restricted fallback parser.
	BackendSubset Backend = "subset"
)

// Parse converts front-matter text into its mapping form using the
// active backend. The result is owned by the caller and is never nil
// when the error is nil.
func Parse(data []byte) (map[string]any, error) {
	return parse(data)
}

// ParseSubset always parses with the restricted fallback, regardless of
// which backend Parse uses. It accepts only the subset grammar and
// returns a *errors.ParseError on failure.
func ParseSubset(data []byte) (map[string]any, error) {
	return parser.Parse(data)
}

// ActiveBackend reports which implementation Parse dispatches to. The
// selection is fixed at build time and never changes during execution.
func ActiveBackend() Backend {
	return activeBackend
}
