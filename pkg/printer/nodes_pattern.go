package printer

import (
	"jsprint/pkg/ast"
	"jsprint/pkg/listfmt"
	"jsprint/pkg/span"
)

// emitPattern dispatches a binding-pattern node to its emitter.
func (p *Printer) emitPattern(n ast.Pattern) {
	switch x := n.(type) {
	case *ast.IdentPattern:
		p.w.NotePosition(x.Span().Lo)
		p.w.WriteSymbol(x.Name)
	case *ast.ObjectPattern:
		p.emitObjectPattern(x)
	case *ast.ArrayPattern:
		p.emitArrayPattern(x)
	case *ast.AssignmentPattern:
		p.emitAssignmentPattern(x)
	case *ast.RestElementPattern:
		p.emitRestElementPattern(x)
	default:
		malformed("unexpected pattern type %T", n)
	}
}

func (p *Printer) emitObjectPattern(n *ast.ObjectPattern) {
	items := make([]spanned, 0, len(n.Properties)+1)
	for _, prop := range n.Properties {
		items = append(items, prop)
	}
	if n.Rest != nil {
		items = append(items, n.Rest)
	}
	var list []spanned
	if n.Properties != nil || n.Rest != nil {
		list = items
	}
	p.emitList(n.Span(), list, listfmt.ObjectPatternProperties, false, func(item spanned, i int) {
		if rest, ok := item.(*ast.RestElementPattern); ok {
			p.emitRestElementPattern(rest)
			return
		}
		p.emitObjectPatternProp(item.(*ast.ObjectPatternProp))
	})
}

func (p *Printer) emitObjectPatternProp(prop *ast.ObjectPatternProp) {
	if prop.Computed {
		p.w.WritePunct("[")
		p.emitExpr(prop.Key)
		p.w.WritePunct("]")
	} else {
		p.emitExpr(prop.Key)
	}
	if prop.Shorthand {
		return
	}
	p.w.WritePunct(":")
	p.w.WriteSpace()
	p.emitPattern(prop.Value)
}

func (p *Printer) emitArrayPattern(n *ast.ArrayPattern) {
	var items []spanned
	if n.Elements != nil {
		items = make([]spanned, len(n.Elements))
		for i, e := range n.Elements {
			if e == nil {
				items[i] = hole{}
			} else {
				items[i] = e
			}
		}
	}
	p.emitList(n.Span(), items, listfmt.ArrayPatternElements, false, func(item spanned, i int) {
		if _, ok := item.(hole); ok {
			return
		}
		p.emitPattern(item.(ast.Pattern))
	})
}

func (p *Printer) emitAssignmentPattern(n *ast.AssignmentPattern) {
	p.emitPattern(n.Left)
	p.w.WriteSpace()
	p.w.WriteOperator("=")
	p.w.WriteSpace()
	p.emitExpr(n.Right)
}

func (p *Printer) emitRestElementPattern(n *ast.RestElementPattern) {
	p.w.WriteOperator("...")
	p.emitPattern(n.Arg)
}

// emitParams emits a function/arrow/method parameter list under the
// shared ParameterList preset (spec.md §4.2/§4.4: "(params)"). items is
// always a non-nil slice (possibly empty), so ParameterList's
// OptionalIfUndefined bit never suppresses the parenthesis pair here.
func (p *Printer) emitParams(params []ast.Pattern) {
	items := make([]spanned, len(params))
	for i, pp := range params {
		items[i] = pp
	}
	p.emitList(paramsSpan(params), items, listfmt.ParameterList, false, func(item spanned, i int) {
		p.emitPattern(item.(ast.Pattern))
	})
}

func paramsSpan(params []ast.Pattern) span.Span {
	if len(params) == 0 {
		return span.Synthetic()
	}
	first, last := params[0].Span(), params[len(params)-1].Span()
	return span.Span{Lo: first.Lo, Hi: last.Hi, Base: first.Base}
}
