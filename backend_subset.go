//go:build miniyaml_subset

package miniyaml

import (
	"github.com/KimNorgaard/go-miniyaml/internal/parser"
)

const activeBackend = BackendSubset

func parse(data []byte) (map[string]any, error) {
	return parser.Parse(data)
}
