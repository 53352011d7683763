// Package scalar classifies and converts raw value fragments into typed
// Go values. Classification is total and order-sensitive: the first
// matching rule wins, and anything that matches no rule is a plain string.
package scalar

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-miniyaml/errors"
)

// Resolve converts a trimmed value fragment into nil, bool, int64,
// *big.Int, string, or []any. Flow lists are flat: elements are resolved
// by ResolveElement and can never be lists themselves.
//
// The flow-list split is a plain comma split. It does not respect quotes
// or nested brackets, so a quoted element containing a comma is split in
// two. This is a known limitation of the subset, kept deliberately.
func Resolve(fragment string, line int) (any, error) {
	if strings.HasPrefix(fragment, "[") && strings.HasSuffix(fragment, "]") && len(fragment) >= 2 {
		inner := strings.TrimSpace(fragment[1 : len(fragment)-1])
		if inner == "" {
			return []any{}, nil
		}
		parts := strings.Split(inner, ",")
		list := make([]any, len(parts))
		for i, part := range parts {
			v, err := ResolveElement(strings.TrimSpace(part), line)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	}
	return ResolveElement(fragment, line)
}

// ResolveElement converts a trimmed fragment into a single typed scalar,
// never a list.
func ResolveElement(fragment string, line int) (any, error) {
	switch fragment {
	case "":
		return "", nil
	case "null", "Null", "NULL", "~":
		return nil, nil
	case "true", "True", "TRUE":
		return true, nil
	case "false", "False", "FALSE":
		return false, nil
	}
	if isInteger(fragment) {
		return parseInteger(fragment), nil
	}
	if strings.HasPrefix(fragment, `"`) && strings.HasSuffix(fragment, `"`) && len(fragment) >= 2 {
		s, err := strconv.Unquote(fragment)
		if err != nil {
			return nil, errors.New(errors.InvalidScalar, line, "invalid double-quoted string: %s", fragment)
		}
		return s, nil
	}
	if strings.HasPrefix(fragment, "'") && strings.HasSuffix(fragment, "'") && len(fragment) >= 2 {
		// Single-quoted strings have no escapes; a doubled quote is a
		// literal quote.
		return strings.ReplaceAll(fragment[1:len(fragment)-1], "''", "'"), nil
	}
	return fragment, nil
}

// isInteger reports whether s is an optional minus sign followed by one
// or more ASCII digits, and nothing else.
func isInteger(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseInteger returns an int64 when the value fits, and a *big.Int
// otherwise. Integers are never truncated.
func parseInteger(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	n, _ := new(big.Int).SetString(s, 10)
	return n
}
