// Package lexer turns raw front-matter text into a stream of decomposed
// key/value lines. Blank lines and comment lines are skipped; every line
// that survives classification carries its 1-based source line number.
package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-miniyaml/errors"
)

// IndentUnit is the fixed indentation step of the subset, in columns.
const IndentUnit = 2

// Line is one content line, stripped of indentation and decomposed into
// its key and raw value fragment. Value is trimmed of surrounding
// whitespace and may be empty, which opens a nested block.
type Line struct {
	Number int // 1-based source line
	Indent int // leading spaces
	Key    string
	Value  string
}

// Scanner walks the input one physical line at a time. Usage follows
// bufio.Scanner: call Scan until it returns false, then check Err.
type Scanner struct {
	lines []string
	pos   int
	line  Line
	err   error
}

// New returns a Scanner over data.
func New(data []byte) *Scanner {
	return &Scanner{lines: strings.Split(string(data), "\n")}
}

// Scan advances to the next content line. It returns false at end of
// input or on the first malformed line; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.pos < len(s.lines) {
		s.pos++
		number := s.pos
		raw := strings.TrimSuffix(s.lines[number-1], "\r")

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent, ok := measureIndent(raw)
		if !ok {
			s.err = errors.New(errors.MalformedIndentation, number, "tabs are not supported in indentation")
			return false
		}
		if indent%IndentUnit != 0 {
			s.err = errors.New(errors.MalformedIndentation, number, "indentation must use %d-space levels", IndentUnit)
			return false
		}

		key, value, ok := splitEntry(trimmed)
		if !ok {
			s.err = errors.New(errors.UnsupportedSyntax, number, "unsupported syntax: %s", trimmed)
			return false
		}

		s.line = Line{Number: number, Indent: indent, Key: key, Value: value}
		return true
	}
	return false
}

// Line returns the line produced by the last successful call to Scan.
func (s *Scanner) Line() Line {
	return s.line
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// measureIndent counts leading spaces. It reports failure if the leading
// whitespace run contains a tab.
func measureIndent(raw string) (int, bool) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
		if raw[i] == '\t' {
			return 0, false
		}
		i++
	}
	return i, true
}

// splitEntry decomposes a stripped content line into key and value. The
// key is a non-empty run of identifier characters terminated by the first
// colon; everything after the colon is the value fragment, trimmed.
func splitEntry(content string) (key, value string, ok bool) {
	i := 0
	for i < len(content) && IsKeyChar(content[i]) {
		i++
	}
	if i == 0 || i >= len(content) || content[i] != ':' {
		return "", "", false
	}
	return content[:i], strings.TrimSpace(content[i+1:]), true
}

// IsKeyChar reports whether c may appear in a mapping key.
func IsKeyChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9') || c == '_' || c == '-'
}
