// Package parser builds the nested document from the stream of
// decomposed lines, tracking nesting with an explicit indentation stack
// rather than recursive descent.
package parser

import (
	"github.com/KimNorgaard/go-miniyaml/internal/lexer"
	"github.com/KimNorgaard/go-miniyaml/internal/scalar"
)

// frame binds an indentation width to its open mapping. Stack widths are
// strictly increasing from the root frame at width -1.
type frame struct {
	indent int
	node   map[string]any
}

// Parse converts front-matter text into its mapping form in a single
// top-to-bottom pass. On error no partial document is returned.
func Parse(data []byte) (map[string]any, error) {
	root := map[string]any{}
	stack := []frame{{indent: -1, node: root}}

	s := lexer.New(data)
	for s.Scan() {
		line := s.Line()

		// Dedent to the deepest frame whose width is strictly less than
		// this line's width. A single step can pop several levels.
		for len(stack) > 1 && line.Indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node

		if line.Value == "" {
			// The line opens a nested block. Last write wins on
			// duplicate keys, same as for scalar entries.
			child := map[string]any{}
			parent[line.Key] = child
			stack = append(stack, frame{indent: line.Indent, node: child})
			continue
		}

		v, err := scalar.Resolve(line.Value, line.Number)
		if err != nil {
			return nil, err
		}
		parent[line.Key] = v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return root, nil
}
