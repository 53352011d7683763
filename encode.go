package miniyaml

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-miniyaml/internal/lexer"
	"github.com/KimNorgaard/go-miniyaml/internal/scalar"
)

// Marshal returns the subset encoding of doc: nested mappings as 2-space
// indented blocks with sorted keys, lists in flow form. Values outside
// the subset (floats, nested lists, mappings inside lists) are rejected.
func Marshal(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes documents to an output stream in the subset grammar.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the subset encoding of doc to the stream. Nothing is
// written if any part of doc cannot be represented.
func (e *Encoder) Encode(doc map[string]any) error {
	var buf bytes.Buffer
	if err := encodeMapping(&buf, doc, 0); err != nil {
		return err
	}
	_, err := e.w.Write(buf.Bytes())
	return err
}

func encodeMapping(buf *bytes.Buffer, m map[string]any, indent int) error {
	pad := strings.Repeat(" ", indent)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if !validKey(key) {
			return fmt.Errorf("miniyaml: cannot encode key %q: keys may only contain letters, digits, hyphen, and underscore", key)
		}
		switch v := m[key].(type) {
		case map[string]any:
			buf.WriteString(pad + key + ":\n")
			if err := encodeMapping(buf, v, indent+lexer.IndentUnit); err != nil {
				return err
			}
		case []any:
			items := make([]string, len(v))
			for i, elem := range v {
				s, err := encodeScalar(elem, true)
				if err != nil {
					return fmt.Errorf("%w (in list %q)", err, key)
				}
				items[i] = s
			}
			fmt.Fprintf(buf, "%s%s: [%s]\n", pad, key, strings.Join(items, ", "))
		default:
			s, err := encodeScalar(v, false)
			if err != nil {
				return fmt.Errorf("%w (for key %q)", err, key)
			}
			fmt.Fprintf(buf, "%s%s: %s\n", pad, key, s)
		}
	}
	return nil
}

func encodeScalar(v any, inList bool) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case *big.Int:
		return val.String(), nil
	case string:
		return encodeString(val, inList)
	default:
		return "", fmt.Errorf("miniyaml: cannot encode value of type %T", v)
	}
}

// encodeString spells s so that it resolves back to the same string:
// bare when the resolver already round-trips it, double-quoted
// otherwise. List elements containing a comma are rejected because the
// flow-list comma split would break them apart even when quoted.
func encodeString(s string, inList bool) (string, error) {
	if inList && strings.Contains(s, ",") {
		return "", fmt.Errorf("miniyaml: cannot encode list element %q: commas split flow-list elements", s)
	}
	if bareRoundTrips(s, inList) {
		return s, nil
	}
	return strconv.Quote(s), nil
}

func bareRoundTrips(s string, inList bool) bool {
	// A bare empty fragment opens a nested block, and surrounding
	// whitespace is trimmed away on the next parse.
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	if strings.ContainsAny(s, "\n\r") {
		return false
	}
	var resolved any
	var err error
	if inList {
		resolved, err = scalar.ResolveElement(s, 0)
	} else {
		resolved, err = scalar.Resolve(s, 0)
	}
	if err != nil {
		return false
	}
	got, ok := resolved.(string)
	return ok && got == s
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !lexer.IsKeyChar(key[i]) {
			return false
		}
	}
	return true
}
