package printer

import "jsprint/pkg/ast"

// emitIdent emits a bare identifier (spec.md §4.4: identifiers are
// "Symbol" tokens — user-chosen names, as opposed to reserved keywords).
func (p *Printer) emitIdent(n *ast.Ident) {
	p.w.NotePosition(n.Span().Lo)
	p.w.WriteSymbol(n.Name)
}

func (p *Printer) emitNumberLiteral(n *ast.NumberLiteral) {
	p.w.NotePosition(n.Span().Lo)
	p.w.WriteNumber(formatNumberText(n))
}

func (p *Printer) emitStringLiteral(n *ast.StringLiteral) {
	p.w.NotePosition(n.Span().Lo)
	p.w.WriteStringLiteral(formatStringText(n))
}

func (p *Printer) emitBooleanLiteral(n *ast.BooleanLiteral) {
	p.w.NotePosition(n.Span().Lo)
	if n.Value {
		p.w.WriteKeyword("true")
	} else {
		p.w.WriteKeyword("false")
	}
}

func (p *Printer) emitNullLiteral(n *ast.NullLiteral) {
	p.w.NotePosition(n.Span().Lo)
	p.w.WriteKeyword("null")
}

func (p *Printer) emitRegexLiteral(n *ast.RegexLiteral) {
	p.w.NotePosition(n.Span().Lo)
	p.w.WriteRegex("/" + n.Pattern + "/" + n.Flags)
}

// emitTemplateLiteral implements spec.md §4.4's template-literal rule:
// walk quasis and interpolated expressions in alternation, enforcing R4
// (len(Quasis) == len(Exprs)+1) before writing anything.
func (p *Printer) emitTemplateLiteral(n *ast.TemplateLiteral) {
	if len(n.Quasis) != len(n.Exprs)+1 {
		invariant("template literal has %d quasis and %d expressions, want quasis == exprs+1", len(n.Quasis), len(n.Exprs))
	}
	p.w.WriteRaw("`")
	for i, q := range n.Quasis {
		p.w.WriteRaw(q)
		if i < len(n.Exprs) {
			p.w.WritePunct("${")
			p.emitExpr(n.Exprs[i])
			p.w.WritePunct("}")
		}
	}
	p.w.WriteRaw("`")
}

func (p *Printer) emitTaggedTemplateExpr(n *ast.TaggedTemplateExpr) {
	p.emitExpr(n.Tag)
	p.emitTemplateLiteral(n.Quasi)
}
