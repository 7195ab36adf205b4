package printer

import (
	"jsprint/pkg/ast"
	"jsprint/pkg/listfmt"
	"jsprint/pkg/span"
)

// scriptListFormat is the ListFormat for a Script/Module body: no
// brackets, no delimiter, laid out one statement per line (spec.md §4.2
// table, "SourceFileStatements").
const scriptListFormat = listfmt.SourceFileStatements

// emitStmtSequence runs a sequence of statements/module items through the
// generic list emitter (spec.md §4.3), which is also how Block
// ("{ MultiLineBlockStatements }") and switch-case bodies lay out their
// statements. topLevel marks a Script/Module body, the only place R3's
// OmitLastSemicolon exception can apply.
func (p *Printer) emitStmtSequence(nodes []ast.Node, format listfmt.Format, topLevel bool) {
	if len(nodes) == 0 {
		// An empty top-level body or empty block body still goes
		// through emitList so MultiLine's "blank interior line" policy
		// (Open Question #1 in SPEC_FULL.md §7) applies uniformly.
		p.emitList(sequenceSpan(nodes), nil, format, false, nil)
		return
	}
	items := make([]spanned, len(nodes))
	for i, n := range nodes {
		items[i] = n
	}
	parent := sequenceSpan(nodes)
	p.emitList(parent, items, format, false, func(item spanned, i int) {
		last := topLevel && i == len(nodes)-1
		p.emitNode(item.(ast.Node), last)
	})
}

// sequenceSpan returns a parent span covering a statement sequence's
// extent, used only for the list emitter's "prev.hi != parent.hi" comment
// placement checks when no containing node span is otherwise available.
func sequenceSpan(nodes []ast.Node) span.Span {
	if len(nodes) == 0 {
		return span.Synthetic()
	}
	first, last := nodes[0].Span(), nodes[len(nodes)-1].Span()
	return span.Span{Lo: first.Lo, Hi: last.Hi, Base: first.Base}
}
