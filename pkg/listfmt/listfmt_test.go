package listfmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsprint/pkg/listfmt"
)

func TestHasRequiresEveryBit(t *testing.T) {
	f := listfmt.CommaDelimited | listfmt.SquareBrackets
	require.True(t, f.Has(listfmt.CommaDelimited))
	require.True(t, f.Has(listfmt.CommaDelimited|listfmt.SquareBrackets))
	require.False(t, f.Has(listfmt.CommaDelimited|listfmt.CurlyBraces))
}

func TestAnySharesAtLeastOneBit(t *testing.T) {
	f := listfmt.Format(listfmt.ObjectLiteralProperties)
	require.True(t, f.Any(listfmt.LinesMask))
	require.False(t, f.Any(listfmt.BarDelimited|listfmt.AmpersandDelimited))
}

func TestOpenCloseMatchesBracketBit(t *testing.T) {
	cases := []struct {
		name        string
		f           listfmt.Format
		open, close string
	}{
		{"parens", listfmt.Parenthesis, "(", ")"},
		{"square", listfmt.SquareBrackets, "[", "]"},
		{"curly", listfmt.CurlyBraces, "{", "}"},
		{"angle", listfmt.AngleBrackets, "<", ">"},
		{"none", listfmt.CommaDelimited, "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			open, close := c.f.OpenClose()
			require.Equal(t, c.open, open)
			require.Equal(t, c.close, close)
		})
	}
}

func TestDelimiterTextPerPreset(t *testing.T) {
	require.Equal(t, ",", listfmt.Format(listfmt.CallArguments).DelimiterText())
	require.Equal(t, "", listfmt.Format(listfmt.ClassMembers).DelimiterText())
	require.Equal(t, " |", listfmt.Format(listfmt.BarDelimited).DelimiterText())
	require.Equal(t, " &", listfmt.Format(listfmt.AmpersandDelimited).DelimiterText())
}

// Spot-checks a few bits of four named presets (three from spec.md §4.2's
// table plus ParameterList) against accidental drift.
func TestPresetsCarryExpectedBits(t *testing.T) {
	require.True(t, listfmt.Format(listfmt.ObjectLiteralProperties).Has(listfmt.MultiLine|listfmt.Indented|listfmt.AllowTrailingComma))
	require.True(t, listfmt.Format(listfmt.CallArguments).Has(listfmt.SingleLine))
	require.False(t, listfmt.Format(listfmt.CallArguments).Has(listfmt.Indented))
	require.True(t, listfmt.Format(listfmt.ParameterList).Has(listfmt.OptionalIfUndefined))
}
