package printer

import (
	"jsprint/pkg/ast"
	"jsprint/pkg/listfmt"
	"jsprint/pkg/span"
)

// emitExpr dispatches an expression node to its emitter. Every expression
// variant in pkg/ast has a case here; an unrecognized variant is a
// MalformedAst (it can only happen if this package and pkg/ast drift).
func (p *Printer) emitExpr(n ast.Expr) {
	switch x := n.(type) {
	case *ast.Ident:
		p.emitIdent(x)
	case *ast.NumberLiteral:
		p.emitNumberLiteral(x)
	case *ast.StringLiteral:
		p.emitStringLiteral(x)
	case *ast.BooleanLiteral:
		p.emitBooleanLiteral(x)
	case *ast.NullLiteral:
		p.emitNullLiteral(x)
	case *ast.RegexLiteral:
		p.emitRegexLiteral(x)
	case *ast.TemplateLiteral:
		p.emitTemplateLiteral(x)
	case *ast.TaggedTemplateExpr:
		p.emitTaggedTemplateExpr(x)
	case *ast.ArrayLiteral:
		p.emitArrayLiteral(x)
	case *ast.ObjectLiteral:
		p.emitObjectLiteral(x)
	case *ast.SpreadElement:
		p.emitSpreadElement(x)
	case *ast.FunctionExpr:
		p.emitFunctionExpr(x)
	case *ast.ArrowFunctionExpr:
		p.emitArrowFunctionExpr(x)
	case *ast.ClassExpr:
		p.emitClassExpr(x)
	case *ast.MemberExpr:
		p.emitMemberExpr(x)
	case *ast.CallExpr:
		p.emitCallExpr(x)
	case *ast.NewExpr:
		p.emitNewExpr(x)
	case *ast.UnaryExpr:
		p.emitUnaryExpr(x)
	case *ast.UpdateExpr:
		p.emitUpdateExpr(x)
	case *ast.BinaryExpr:
		p.emitBinaryExpr(x)
	case *ast.AssignExpr:
		p.emitAssignExpr(x)
	case *ast.ConditionalExpr:
		p.emitConditionalExpr(x)
	case *ast.SequenceExpr:
		p.emitSequenceExpr(x)
	case *ast.ParenExpr:
		p.emitParenExpr(x)
	case *ast.AwaitExpr:
		p.emitAwaitExpr(x)
	case *ast.YieldExpr:
		p.emitYieldExpr(x)
	default:
		malformed("unexpected expression type %T", n)
	}
}

func (p *Printer) emitParenExpr(n *ast.ParenExpr) {
	p.w.WritePunct("(")
	p.emitExpr(n.X)
	p.w.WritePunct(")")
}

func (p *Printer) emitAwaitExpr(n *ast.AwaitExpr) {
	p.w.WriteKeyword("await")
	p.w.WriteHardSpace()
	p.emitExpr(n.Arg)
}

func (p *Printer) emitYieldExpr(n *ast.YieldExpr) {
	p.w.WriteKeyword("yield")
	if n.Delegate {
		p.w.WriteOperator("*")
	}
	if n.Arg != nil {
		p.w.WriteHardSpace()
		p.emitExpr(n.Arg)
	}
}

func (p *Printer) emitArrayLiteral(n *ast.ArrayLiteral) {
	var items []spanned
	if n.Elements != nil {
		items = make([]spanned, len(n.Elements))
		for i, e := range n.Elements {
			items[i] = holeOr(e)
		}
	}
	p.emitList(n.Span(), items, listfmt.ArrayLiteralElements, n.HasTrailingComma, func(item spanned, i int) {
		if _, ok := item.(hole); ok {
			return // elision: nothing to write between the commas
		}
		p.emitExpr(item.(ast.Expr))
	})
}

// hole represents an elision in an array literal/pattern ("[1, , 3]"): a
// list item with no tokens of its own, carrying only a synthetic span so
// the list emitter's position comparisons have something to read.
type hole struct{}

func (hole) Span() span.Span { return span.Synthetic() }

func holeOr(e ast.Expr) spanned {
	if e == nil {
		return hole{}
	}
	return e
}

func (p *Printer) emitObjectLiteral(n *ast.ObjectLiteral) {
	items := make([]spanned, len(n.Properties))
	for i, prop := range n.Properties {
		items[i] = prop
	}
	var list []spanned
	if n.Properties != nil {
		list = items
	}
	p.emitList(n.Span(), list, listfmt.ObjectLiteralProperties, n.HasTrailingComma, func(item spanned, i int) {
		p.emitProperty(item.(*ast.Property))
	})
}

func (p *Printer) emitProperty(prop *ast.Property) {
	if prop.Kind == ast.PropSpread {
		p.w.WriteOperator("...")
		p.emitExpr(prop.Value)
		return
	}
	if prop.Kind == ast.PropGet || prop.Kind == ast.PropSet {
		if prop.Kind == ast.PropGet {
			p.w.WriteKeyword("get")
		} else {
			p.w.WriteKeyword("set")
		}
		p.w.WriteSpace()
		p.emitPropertyKey(prop)
		fn := prop.Value.(*ast.FunctionExpr)
		p.emitParams(fn.Params)
		p.w.WriteSpace()
		p.emitBlockStmt(fn.Body)
		return
	}
	if prop.Kind == ast.PropMethod {
		if prop.Async {
			p.w.WriteKeyword("async")
			p.w.WriteSpace()
		}
		if prop.Generator {
			p.w.WriteOperator("*")
		}
		p.emitPropertyKey(prop)
		fn := prop.Value.(*ast.FunctionExpr)
		p.emitParams(fn.Params)
		p.w.WriteSpace()
		p.emitBlockStmt(fn.Body)
		return
	}
	// PropInit
	p.emitPropertyKey(prop)
	if prop.Shorthand {
		return
	}
	p.w.WritePunct(":")
	p.w.WriteSpace()
	p.emitExpr(prop.Value)
}

func (p *Printer) emitPropertyKey(prop *ast.Property) {
	if prop.Computed {
		p.w.WritePunct("[")
		p.emitExpr(prop.Key)
		p.w.WritePunct("]")
		return
	}
	p.emitExpr(prop.Key)
}

func (p *Printer) emitSpreadElement(n *ast.SpreadElement) {
	p.w.WriteOperator("...")
	p.emitExpr(n.Arg)
}

func (p *Printer) emitFunctionExpr(n *ast.FunctionExpr) {
	if n.Async {
		p.w.WriteKeyword("async")
		p.w.WriteSpace()
	}
	p.w.WriteKeyword("function")
	if n.Generator {
		p.w.WriteOperator("*")
	}
	if n.Name != nil {
		p.w.WriteSpace()
		p.emitIdent(n.Name)
	}
	p.emitParams(n.Params)
	p.w.WriteSpace()
	p.emitBlockStmt(n.Body)
}

func (p *Printer) emitArrowFunctionExpr(n *ast.ArrowFunctionExpr) {
	if n.Async {
		p.w.WriteKeyword("async")
		p.w.WriteSpace()
	}
	p.emitParams(n.Params)
	p.w.WriteOperator("=>")
	if n.ExprBody {
		p.w.IncreaseIndent()
		p.emitExpr(n.Body.(ast.Expr))
		p.w.DecreaseIndent()
		return
	}
	p.w.WriteSpace()
	p.emitBlockStmt(n.Body.(*ast.BlockStmt))
}

func (p *Printer) emitClassExpr(n *ast.ClassExpr) {
	p.emitClassHeaderAndBody(n.Name, n.Super, n.Members)
}

func (p *Printer) emitMemberExpr(n *ast.MemberExpr) {
	p.emitExpr(n.Object)
	if n.Computed {
		if n.Optional {
			p.w.WritePunct("?.")
		}
		p.w.WritePunct("[")
		p.emitExpr(n.Property)
		p.w.WritePunct("]")
		return
	}
	if n.Optional {
		p.w.WritePunct("?.")
	} else if num, ok := n.Object.(*ast.NumberLiteral); ok && needsDoubleDotForMemberAccess(num, formatNumberText(num)) {
		p.w.WritePunct("..")
		p.emitExpr(n.Property)
		return
	} else {
		p.w.WritePunct(".")
	}
	p.emitExpr(n.Property)
}

func (p *Printer) emitCallExpr(n *ast.CallExpr) {
	p.emitExpr(n.Callee)
	if n.Optional {
		p.w.WritePunct("?.")
	}
	format := listfmt.Format(listfmt.CallArguments)
	hasTrailing := false
	if n.HasTrailingComma && p.cfg.Target.AllowsTrailingCallComma() {
		format |= listfmt.AllowTrailingComma
		hasTrailing = true
	}
	items := exprsToSpanned(n.Args)
	p.emitList(n.Span(), items, format, hasTrailing, func(item spanned, i int) {
		p.emitExpr(item.(ast.Expr))
	})
}

func (p *Printer) emitNewExpr(n *ast.NewExpr) {
	p.w.WriteKeyword("new")
	p.w.WriteHardSpace()
	p.emitExpr(n.Callee)
	if !n.HasArgs {
		return
	}
	items := exprsToSpanned(n.Args)
	if items == nil {
		items = []spanned{}
	}
	p.emitList(n.Span(), items, listfmt.CallArguments, false, func(item spanned, i int) {
		p.emitExpr(item.(ast.Expr))
	})
}

func (p *Printer) emitUnaryExpr(n *ast.UnaryExpr) {
	if n.Op.IsWordOperator() {
		p.w.WriteKeyword(string(n.Op))
	} else {
		p.w.WriteOperator(string(n.Op))
	}
	if shouldEmitWhitespaceBeforeUnaryOperand(n.Op, n.Arg, firstEmittedText(n.Arg)) {
		p.w.WriteHardSpace()
	}
	p.emitExpr(n.Arg)
}

func (p *Printer) emitUpdateExpr(n *ast.UpdateExpr) {
	if n.Prefix {
		p.w.WriteOperator(string(n.Op))
		p.emitExpr(n.Arg)
		return
	}
	p.emitExpr(n.Arg)
	p.w.WriteOperator(string(n.Op))
}

func (p *Printer) emitBinaryExpr(n *ast.BinaryExpr) {
	p.emitExpr(n.Left)
	p.w.WriteSpace()
	// `in` and `instanceof` are spelled as keywords; classifying them as
	// such lets table T1 keep them off their operands even under Minify.
	if startsWithAlphaNum(n.Op) {
		p.w.WriteKeyword(n.Op)
	} else {
		p.w.WriteOperator(n.Op)
	}
	p.w.WriteSpace()
	p.emitExpr(n.Right)
}

func (p *Printer) emitAssignExpr(n *ast.AssignExpr) {
	p.emitExpr(n.Left)
	p.w.WriteSpace()
	p.w.WriteOperator(n.Op)
	p.w.WriteSpace()
	p.emitExpr(n.Right)
}

func (p *Printer) emitConditionalExpr(n *ast.ConditionalExpr) {
	p.emitExpr(n.Test)
	p.w.WriteSpace()
	p.w.WritePunct("?")
	p.w.WriteSpace()
	p.emitExpr(n.Cons)
	p.w.WriteSpace()
	p.w.WritePunct(":")
	p.w.WriteSpace()
	p.emitExpr(n.Alt)
}

func (p *Printer) emitSequenceExpr(n *ast.SequenceExpr) {
	items := exprsToSpanned(n.Exprs)
	p.emitList(n.Span(), items, listfmt.CommaListElements, false, func(item spanned, i int) {
		p.emitExpr(item.(ast.Expr))
	})
}

func exprsToSpanned(exprs []ast.Expr) []spanned {
	if exprs == nil {
		return nil
	}
	out := make([]spanned, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}
