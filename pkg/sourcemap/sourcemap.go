// Package sourcemap answers the three layout questions the list emitter
// needs about original source positions (spec.md §2 item 2, §6): should a
// leading/separating/closing line terminator be written. It never touches
// output bytes; it only reads position information.
package sourcemap

import (
	"fmt"

	"jsprint/pkg/listfmt"
)

// SourceMap is the read-only collaborator spec.md §3 calls "Source Map
// (external, read-only)". An implementer backs it with whatever original
// source text and offset table the surrounding toolchain already has.
type SourceMap interface {
	// SpanToSnippet returns the exact original source text for a span, and
	// whether the span could be resolved at all.
	SpanToSnippet(lo, hi uint32) (string, bool)

	// SpanToString renders a span's location for diagnostics. It always
	// returns something printable, even when the span cannot be resolved
	// to text.
	SpanToString(lo, hi uint32) string

	// IsOnSameLine reports whether two original offsets fall on the same
	// physical source line.
	IsOnSameLine(a, b uint32) bool

	// ShouldWriteLeadingLineTerminator reports whether the list emitter
	// should write a line terminator before the first child of a
	// non-empty list.
	ShouldWriteLeadingLineTerminator(parentLo uint32, childCount int, format listfmt.Format) bool

	// ShouldWriteSeparatingLineTerminator reports whether the list emitter
	// should write a line terminator between two adjacent original
	// children rather than the format's default spacing.
	ShouldWriteSeparatingLineTerminator(prevHi, currLo uint32, format listfmt.Format) bool

	// ShouldWriteClosingLineTerminator reports whether the list emitter
	// should write a line terminator before the closing bracket of a
	// non-empty list.
	ShouldWriteClosingLineTerminator(parentHi uint32, lastChildHi uint32, format listfmt.Format) bool
}

// Nop is the "first-cut" source map spec.md §9 describes: every layout
// question defaults to whatever the MultiLine flag already implies, and no
// position is ever resolved to text. It is the zero-configuration default
// for synthetic ASTs that carry no original source at all.
type Nop struct{}

func (Nop) SpanToSnippet(uint32, uint32) (string, bool) { return "", false }

func (Nop) SpanToString(lo, hi uint32) string { return fmt.Sprintf("%d..%d", lo, hi) }

func (Nop) IsOnSameLine(uint32, uint32) bool { return false }

func (Nop) ShouldWriteLeadingLineTerminator(_ uint32, _ int, format listfmt.Format) bool {
	return format.Has(listfmt.MultiLine)
}

func (Nop) ShouldWriteSeparatingLineTerminator(_, _ uint32, format listfmt.Format) bool {
	return format.Has(listfmt.MultiLine)
}

func (Nop) ShouldWriteClosingLineTerminator(_, _ uint32, format listfmt.Format) bool {
	return format.Has(listfmt.MultiLine)
}

// LineIndex maps a byte offset in some original source file to a 1-based
// line number. Callers typically back this with a precomputed table of
// newline offsets, the way a parser's line table would.
type LineIndex func(offset uint32) uint32

// Line is a SourceMap that compares original line numbers of adjacent
// spans to decide layout, the way spec.md §9 describes as "full fidelity":
// "comparing original-source line numbers of adjacent nodes". Source is
// the full original text, used to answer SpanToSnippet/SpanToString.
type Line struct {
	Source string
	Lines  LineIndex
}

func (l Line) SpanToSnippet(lo, hi uint32) (string, bool) {
	if l.Source == "" || hi < lo || int(hi) > len(l.Source) {
		return "", false
	}
	return l.Source[lo:hi], true
}

func (l Line) SpanToString(lo, hi uint32) string {
	if snippet, ok := l.SpanToSnippet(lo, hi); ok {
		return fmt.Sprintf("%d..%d: %q", lo, hi, snippet)
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}

func (l Line) IsOnSameLine(a, b uint32) bool {
	if l.Lines == nil {
		return false
	}
	return l.Lines(a) == l.Lines(b)
}

func (l Line) ShouldWriteLeadingLineTerminator(parentLo uint32, childCount int, format listfmt.Format) bool {
	if childCount == 0 || l.Lines == nil {
		return format.Has(listfmt.MultiLine)
	}
	return format.Has(listfmt.MultiLine) || format.Has(listfmt.PreferNewLine)
}

func (l Line) ShouldWriteSeparatingLineTerminator(prevHi, currLo uint32, format listfmt.Format) bool {
	if l.Lines == nil {
		return format.Has(listfmt.MultiLine)
	}
	if format.Has(listfmt.SingleLine) && !l.IsOnSameLine(prevHi, currLo) {
		// Two originally-adjacent-in-the-list children that were on
		// different source lines keep that break even under a SingleLine
		// preset, matching "full fidelity" described in spec.md §9.
		return true
	}
	return format.Has(listfmt.MultiLine)
}

func (l Line) ShouldWriteClosingLineTerminator(parentHi, lastChildHi uint32, format listfmt.Format) bool {
	if l.Lines == nil {
		return format.Has(listfmt.MultiLine)
	}
	return format.Has(listfmt.MultiLine) || (format.Has(listfmt.PreferNewLine) && !l.IsOnSameLine(lastChildHi, parentHi))
}
