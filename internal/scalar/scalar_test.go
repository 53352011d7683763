package scalar_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	yamlerr "github.com/KimNorgaard/go-miniyaml/errors"
	"github.com/KimNorgaard/go-miniyaml/internal/scalar"
)

func TestResolve_Classification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"empty", "", ""},
		{"null lowercase", "null", nil},
		{"null capitalized", "Null", nil},
		{"null uppercase", "NULL", nil},
		{"null tilde", "~", nil},
		{"true", "true", true},
		{"True", "True", true},
		{"TRUE", "TRUE", true},
		{"false", "false", false},
		{"False", "False", false},
		{"FALSE", "FALSE", false},
		{"integer", "123", int64(123)},
		{"negative integer", "-42", int64(-42)},
		{"zero", "0", int64(0)},
		{"quoted digits stay a string", `"123"`, "123"},
		{"quoted bool stays a string", `"true"`, "true"},
		{"bare word", "maybe", "maybe"},
		{"lone minus", "-", "-"},
		{"minus then word", "-abc", "-abc"},
		{"float is not an integer", "1.5", "1.5"},
		{"double-quoted escapes", `"a\nb\tc"`, "a\nb\tc"},
		{"double-quoted unicode escape", `"\u00e9"`, "é"},
		{"single-quoted literal", `'a\nb'`, `a\nb`},
		{"single-quoted doubled quote", `'it''s'`, "it's"},
		{"single-quoted empty", "''", ""},
		{"null-like word", "nulls", "nulls"},
		{"mixed case bool is a string", "tRue", "tRue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := scalar.Resolve(tt.input, 1)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestResolve_BigInteger(t *testing.T) {
	// One past math.MaxInt64.
	v, err := scalar.Resolve("9223372036854775808", 1)
	require.NoError(t, err)
	n, ok := v.(*big.Int)
	require.True(t, ok, "out-of-range integers must not be truncated")
	require.Equal(t, "9223372036854775808", n.String())

	v, err = scalar.Resolve("-9223372036854775809", 1)
	require.NoError(t, err)
	n, ok = v.(*big.Int)
	require.True(t, ok)
	require.Equal(t, "-9223372036854775809", n.String())
}

func TestResolve_InvalidDoubleQuoted(t *testing.T) {
	tests := []string{
		`"unterminated escape\"`,
		`"bad \q escape"`,
		`"embedded " quote"`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := scalar.Resolve(input, 7)
			require.Error(t, err)
			var perr *yamlerr.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, yamlerr.InvalidScalar, perr.Kind)
			require.Equal(t, 7, perr.Line)
		})
	}
}

func TestResolve_FlowLists(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []any
	}{
		{"empty list", "[]", []any{}},
		{"empty list with spaces", "[  ]", []any{}},
		{"mixed scalars", `[1, true, null, word, "quoted"]`, []any{int64(1), true, nil, "word", "quoted"}},
		{"whitespace around elements", "[ 1 ,2,  3 ]", []any{int64(1), int64(2), int64(3)}},
		{"empty element", "[a, , b]", []any{"a", "", "b"}},
		{"lists are flat", "[[1]]", []any{"[1]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := scalar.Resolve(tt.input, 1)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

// The flow-list comma split is a plain split: it does not respect quotes,
// so a quoted element containing a comma is split apart. This documents
// the known limitation rather than the behavior a full parser would have.
func TestResolve_FlowListCommaSplitLimitation(t *testing.T) {
	v, err := scalar.Resolve(`[1, true, "a,b"]`, 1)
	require.NoError(t, err)
	require.Equal(t, []any{int64(1), true, `"a`, `b"`}, v)
}

func TestResolve_InvalidElementFailsWholeList(t *testing.T) {
	_, err := scalar.Resolve(`[1, "bad \q", 3]`, 4)
	require.Error(t, err)
	var perr *yamlerr.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yamlerr.InvalidScalar, perr.Kind)
}
