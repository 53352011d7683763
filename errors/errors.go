package errors

import "fmt"

// Kind classifies the ways a parse can fail. Every failure aborts the
// parse; no partial document is ever returned alongside an error.
type Kind int

const (
	// MalformedIndentation reports tabs in leading whitespace or an
	// indentation width that is not a multiple of two spaces.
	MalformedIndentation Kind = iota + 1

	// UnsupportedSyntax reports a line that does not have the
	// "key: value" shape, or uses a construct outside the subset
	// (list-item lines, block scalars, anchors, and so on).
	UnsupportedSyntax

	// InvalidScalar reports a double-quoted fragment that is not a
	// well-formed string literal.
	InvalidScalar
)

func (k Kind) String() string {
	switch k {
	case MalformedIndentation:
		return "malformed indentation"
	case UnsupportedSyntax:
		return "unsupported syntax"
	case InvalidScalar:
		return "invalid scalar"
	}
	return "unknown"
}

// ParseError describes a single fatal parse failure. Line is 1-based.
type ParseError struct {
	Kind    Kind
	Line    int
	Message string
}

// New returns a ParseError for the given kind and line.
func New(kind Kind, line int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("miniyaml: line %d: %s", e.Line, e.Message)
}
