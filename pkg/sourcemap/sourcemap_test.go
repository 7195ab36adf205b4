package sourcemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsprint/pkg/listfmt"
	"jsprint/pkg/sourcemap"
)

// Nop is the "first-cut" source map spec.md §9 names: every layout question
// defers entirely to the MultiLine flag, regardless of the positions given.
func TestNopDefersToMultiLineFlag(t *testing.T) {
	var sm sourcemap.SourceMap = sourcemap.Nop{}
	require.True(t, sm.ShouldWriteLeadingLineTerminator(0, 2, listfmt.MultiLine))
	require.False(t, sm.ShouldWriteLeadingLineTerminator(0, 2, listfmt.SingleLine))
	require.True(t, sm.ShouldWriteSeparatingLineTerminator(0, 1, listfmt.MultiLine))
	require.False(t, sm.ShouldWriteClosingLineTerminator(0, 1, listfmt.SingleLine))

	snippet, ok := sm.SpanToSnippet(0, 3)
	require.False(t, ok)
	require.Equal(t, "", snippet)
	require.Equal(t, "0..3", sm.SpanToString(0, 3))
	require.False(t, sm.IsOnSameLine(0, 1))
}

func lineIndexFor(newlineOffsets ...uint32) sourcemap.LineIndex {
	return func(offset uint32) uint32 {
		line := uint32(1)
		for _, nl := range newlineOffsets {
			if offset > nl {
				line++
			}
		}
		return line
	}
}

// Line compares original line numbers: a SingleLine-preset list whose
// adjacent children were on different source lines keeps that break
// (spec.md §9's "full fidelity" note), even though SingleLine alone would
// not have asked for one.
func TestLineKeepsOriginalBreakUnderSingleLine(t *testing.T) {
	sm := sourcemap.Line{Source: "a,\nb", Lines: lineIndexFor(2)}
	require.True(t, sm.ShouldWriteSeparatingLineTerminator(1, 3, listfmt.SingleLine))
	require.True(t, sm.IsOnSameLine(0, 1))
	require.False(t, sm.IsOnSameLine(0, 3))
}

func TestLineFallsBackToMultiLineWhenNoLineIndex(t *testing.T) {
	sm := sourcemap.Line{Source: "a,b"}
	require.True(t, sm.ShouldWriteSeparatingLineTerminator(0, 2, listfmt.MultiLine))
	require.False(t, sm.ShouldWriteSeparatingLineTerminator(0, 2, listfmt.SingleLine))
}

func TestLineSpanToSnippet(t *testing.T) {
	sm := sourcemap.Line{Source: "const x = 1;"}
	got, ok := sm.SpanToSnippet(6, 7)
	require.True(t, ok)
	require.Equal(t, "x", got)

	_, ok = sm.SpanToSnippet(100, 200)
	require.False(t, ok)

	require.Equal(t, `6..7: "x"`, sm.SpanToString(6, 7))
	require.Equal(t, "100..200", sm.SpanToString(100, 200))
}
