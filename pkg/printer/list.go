package printer

import (
	"jsprint/pkg/listfmt"
	"jsprint/pkg/span"
)

// spanned is satisfied by every ast node-ish value the list emitter
// iterates over: full AST nodes as well as the auxiliary struct types
// (ast.Property, ast.ClassMember, ast.SwitchCase, ...) that embed the same
// unexported node base and so already expose Span().
type spanned interface {
	Span() span.Span
}

// emitList is the generic list emitter: spec.md §4.3, transcribed
// directly. It is the single most intricate routine in the engine and the
// fulcrum of correctness (spec.md §2) — every comma/bracket/brace-
// delimited construct in the node emitters (call arguments, array/object
// literals, class members, parameter lists, import/export specifier
// lists, statement sequences) funnels through this one function with a
// different ListFormat preset.
//
// items may be nil (absent list) or empty (present, zero-length list);
// emitList distinguishes the two exactly as spec.md step 1/2 requires.
// emitChild is invoked once per item, in order, with the item and its
// index; it is responsible for writing that single child's tokens.
// hasTrailingComma carries the "source had a trailing comma" bit spec.md
// §4.3 step 6 says a list's AST may record; pass false when the AST gives
// the printer no such bit.
func (p *Printer) emitList(parent span.Span, items []spanned, format listfmt.Format, hasTrailingComma bool, emitChild func(item spanned, index int)) {
	if items == nil && format.Has(listfmt.OptionalIfUndefined) {
		return
	}
	isEmpty := items == nil || len(items) == 0

	if isEmpty && format.Has(listfmt.OptionalIfEmpty) {
		return
	}

	open, close := format.OpenClose()
	hasBrackets := format.Any(listfmt.BracketsMask)

	if hasBrackets {
		p.w.WritePunct(open)
		if isEmpty {
			p.emitTrailingComments(parent.Lo)
		}
	}

	if isEmpty {
		if format.Has(listfmt.MultiLine) {
			p.w.WriteLine()
		} else if format.Has(listfmt.SpaceBetweenBraces) && !format.Has(listfmt.NoSpaceIfEmpty) {
			p.w.WriteSpace()
		}
	} else {
		p.emitNonEmptyList(parent, items, format, hasTrailingComma, emitChild)
	}

	if hasBrackets {
		if isEmpty {
			p.emitLeadingComments(parent.Hi)
		}
		p.w.WritePunct(close)
	}
}

func (p *Printer) emitNonEmptyList(parent span.Span, items []spanned, format listfmt.Format, hasTrailingComma bool, emitChild func(item spanned, index int)) {
	mayEmitIntervening := !format.Has(listfmt.NoInterveningComments)
	shouldEmitIntervening := mayEmitIntervening

	if p.sm.ShouldWriteLeadingLineTerminator(parent.Lo, len(items), format) {
		p.w.WriteLine()
		shouldEmitIntervening = false
	} else if format.Has(listfmt.SpaceBetweenBraces) {
		p.w.WriteSpace()
	}

	if format.Has(listfmt.Indented) {
		p.w.IncreaseIndent()
	}

	var prev spanned
	for i, item := range items {
		if i > 0 {
			if format.Delimiter() != listfmt.None && prev.Span().Hi != parent.Hi {
				p.emitLeadingComments(prev.Span().Hi)
			}

			if delim := format.DelimiterText(); delim != "" {
				p.w.WritePunct(delim)
			}

			decreaseAfterEmit := false
			if p.sm.ShouldWriteSeparatingLineTerminator(prev.Span().Hi, item.Span().Lo, format) {
				if format&(listfmt.LinesMask|listfmt.Indented) == listfmt.SingleLine {
					p.w.IncreaseIndent()
					decreaseAfterEmit = true
				}
				p.w.WriteLine()
				shouldEmitIntervening = false
			} else if format.Has(listfmt.SpaceBetweenSiblings) {
				p.w.WriteSpace()
			}

			if shouldEmitIntervening {
				p.emitTrailingComments(item.Span().Hi)
			} else {
				shouldEmitIntervening = mayEmitIntervening
			}

			emitChild(item, i)

			if decreaseAfterEmit {
				p.w.DecreaseIndent()
			}
		} else {
			if shouldEmitIntervening {
				p.emitTrailingComments(item.Span().Hi)
			} else {
				shouldEmitIntervening = mayEmitIntervening
			}
			emitChild(item, i)
		}
		prev = item
	}

	if format.Has(listfmt.AllowTrailingComma) && format.Has(listfmt.CommaDelimited) && hasTrailingComma {
		p.w.WritePunct(",")
	}

	if prev != nil && prev.Span().Hi != parent.Hi && format.Delimiter() != listfmt.None {
		p.emitLeadingComments(prev.Span().Hi)
	}

	if format.Has(listfmt.Indented) {
		p.w.DecreaseIndent()
	}

	lastHi := parent.Hi
	if prev != nil {
		lastHi = prev.Span().Hi
	}
	if p.sm.ShouldWriteClosingLineTerminator(parent.Hi, lastHi, format) {
		p.w.WriteLine()
	} else if format.Has(listfmt.SpaceBetweenBraces) {
		p.w.WriteSpace()
	}
}
