package miniyaml

import (
	"errors"
	"strings"
)

// delimiter opens and closes a front matter block.
const delimiter = "---"

var (
	// ErrNoFrontMatter is returned when the input does not begin with a
	// front matter delimiter line.
	ErrNoFrontMatter = errors.New("miniyaml: no front matter block")

	// ErrUnterminatedFrontMatter is returned when the opening delimiter
	// is never closed.
	ErrUnterminatedFrontMatter = errors.New("miniyaml: unterminated front matter block")
)

// SplitFrontMatter isolates a leading front matter block from a larger
// document. The block must start with a "---" line as the first line of
// the input and ends at the next "---" line; front holds the text between
// the delimiters and body everything after the closing one.
func SplitFrontMatter(data []byte) (front, body []byte, err error) {
	lines := strings.SplitAfter(string(data), "\n")
	if strings.TrimSpace(lines[0]) != delimiter {
		return nil, nil, ErrNoFrontMatter
	}
	var block strings.Builder
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			return []byte(block.String()), []byte(strings.Join(lines[i+1:], "")), nil
		}
		block.WriteString(lines[i])
	}
	return nil, nil, ErrUnterminatedFrontMatter
}

// ParseFrontMatter splits off the leading front matter block and parses
// it with the active backend, returning the document and the remaining
// body.
func ParseFrontMatter(data []byte) (map[string]any, []byte, error) {
	front, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, nil, err
	}
	doc, err := Parse(front)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}
