package printer

import (
	"jsprint/pkg/ast"
	"jsprint/pkg/listfmt"
	"jsprint/pkg/span"
)

// emitStmt dispatches a statement to its emitter. last is true only for the
// final statement of a top-level Script/Module body, enabling R3's
// OmitLastSemicolon exception (spec.md §4.4, §3 Config.OmitLastSemicolon):
// when set, that one terminating semicolon is elided.
func (p *Printer) emitStmt(n ast.Stmt, last bool) {
	switch x := n.(type) {
	case *ast.ExprStmt:
		p.emitExprStmt(x, last)
	case *ast.EmptyStmt:
		p.writeStmtTerminator(last)
	case *ast.BlockStmt:
		p.emitBlockStmt(x)
	case *ast.VarStmt:
		p.emitVarStmt(x, last)
	case *ast.FunctionDecl:
		p.emitFunctionDecl(x)
	case *ast.ClassDecl:
		p.emitClassDecl(x)
	case *ast.ReturnStmt:
		p.emitReturnStmt(x, last)
	case *ast.ThrowStmt:
		p.emitThrowStmt(x, last)
	case *ast.BreakStmt:
		p.emitBreakStmt(x, last)
	case *ast.ContinueStmt:
		p.emitContinueStmt(x, last)
	case *ast.IfStmt:
		p.emitIfStmt(x)
	case *ast.ForStmt:
		p.emitForStmt(x)
	case *ast.ForInStmt:
		p.emitForInStmt(x)
	case *ast.ForOfStmt:
		p.emitForOfStmt(x)
	case *ast.WhileStmt:
		p.emitWhileStmt(x)
	case *ast.DoWhileStmt:
		p.emitDoWhileStmt(x, last)
	case *ast.SwitchStmt:
		p.emitSwitchStmt(x)
	case *ast.LabeledStmt:
		p.emitLabeledStmt(x, last)
	case *ast.TryStmt:
		p.emitTryStmt(x)
	default:
		malformed("unexpected statement type %T", n)
	}
}

// writeStmtTerminator writes a statement's closing `;`, honoring R3's
// OmitLastSemicolon exception for the final top-level statement.
func (p *Printer) writeStmtTerminator(last bool) {
	if last && p.cfg.OmitLastSemicolon {
		return
	}
	p.w.WritePunct(";")
}

// emitBlockStmt is the shared `{ MultiLineBlockStatements }` emitter
// (spec.md §4.4 "Block"), reused by every construct with a brace body:
// functions, arrow bodies, if/for/while/do/try, class accessor/method
// bodies.
func (p *Printer) emitBlockStmt(b *ast.BlockStmt) {
	p.emitStmtSequence(stmtsToNodes(b.Body), listfmt.MultiLineBlockStatements, false)
}

func (p *Printer) emitExprStmt(n *ast.ExprStmt, last bool) {
	p.emitExpr(n.X)
	p.writeStmtTerminator(last)
}

func (p *Printer) emitVarStmt(n *ast.VarStmt, last bool) {
	p.emitVarStmtHeader(n)
	p.writeStmtTerminator(last)
}

func (p *Printer) emitFunctionDecl(n *ast.FunctionDecl) {
	if n.Async {
		p.w.WriteKeyword("async")
		p.w.WriteHardSpace()
	}
	p.w.WriteKeyword("function")
	if n.Generator {
		p.w.WriteOperator("*")
	}
	p.w.WriteHardSpace()
	p.emitIdent(n.Name)
	p.emitParams(n.Params)
	p.w.WriteSpace()
	p.emitBlockStmt(n.Body)
}

func (p *Printer) emitClassDecl(n *ast.ClassDecl) {
	p.emitClassHeaderAndBody(n.Name, n.Super, n.Members)
}

// emitClassHeaderAndBody is shared by ClassDecl and ClassExpr (the only
// difference being an optional name): `class [Name] [extends Super] Body`.
func (p *Printer) emitClassHeaderAndBody(name *ast.Ident, super ast.Expr, members []*ast.ClassMember) {
	p.w.WriteKeyword("class")
	if name != nil {
		p.w.WriteHardSpace()
		p.emitIdent(name)
	}
	if super != nil {
		p.w.WriteSpace()
		p.w.WriteKeyword("extends")
		p.w.WriteHardSpace()
		p.emitExpr(super)
	}
	p.w.WriteSpace()
	p.emitClassBody(members)
}

func (p *Printer) emitClassBody(members []*ast.ClassMember) {
	items := make([]spanned, len(members))
	for i, m := range members {
		items[i] = m
	}
	var list []spanned
	if members != nil {
		list = items
	}
	p.emitList(classBodySpan(members), list, listfmt.ClassMembers, false, func(item spanned, i int) {
		p.emitClassMember(item.(*ast.ClassMember))
	})
}

func classBodySpan(members []*ast.ClassMember) span.Span {
	if len(members) == 0 {
		return span.Synthetic()
	}
	first, last := members[0].Span(), members[len(members)-1].Span()
	return span.Span{Lo: first.Lo, Hi: last.Hi, Base: first.Base}
}

func (p *Printer) emitClassMember(m *ast.ClassMember) {
	if m.Static {
		p.w.WriteKeyword("static")
		p.w.WriteHardSpace()
	}
	switch m.Kind {
	case ast.GetterMember:
		p.w.WriteKeyword("get")
		p.w.WriteHardSpace()
		p.emitClassMemberKey(m)
		p.emitParams(m.Params)
		p.w.WriteSpace()
		p.emitBlockStmt(m.Body)
		return
	case ast.SetterMember:
		p.w.WriteKeyword("set")
		p.w.WriteHardSpace()
		p.emitClassMemberKey(m)
		p.emitParams(m.Params)
		p.w.WriteSpace()
		p.emitBlockStmt(m.Body)
		return
	case ast.ConstructorMember:
		p.emitClassMemberKey(m)
		p.emitParams(m.Params)
		p.w.WriteSpace()
		p.emitBlockStmt(m.Body)
		return
	case ast.FieldMember:
		p.emitClassMemberKey(m)
		if m.Value != nil {
			p.w.WriteSpace()
			p.w.WriteOperator("=")
			p.w.WriteSpace()
			p.emitExpr(m.Value)
		}
		p.w.WritePunct(";")
		return
	default: // MethodMember
		if m.Async {
			p.w.WriteKeyword("async")
			p.w.WriteHardSpace()
		}
		if m.Generator {
			p.w.WriteOperator("*")
		}
		p.emitClassMemberKey(m)
		p.emitParams(m.Params)
		p.w.WriteSpace()
		p.emitBlockStmt(m.Body)
	}
}

func (p *Printer) emitClassMemberKey(m *ast.ClassMember) {
	if m.Computed {
		p.w.WritePunct("[")
		p.emitExpr(m.Key)
		p.w.WritePunct("]")
		return
	}
	p.emitExpr(m.Key)
}

// emitReturnStmt/emitThrowStmt implement spec.md §4.4's ASI guard: keyword
// followed by a mandatory space before the argument when present, then `;`.
func (p *Printer) emitReturnStmt(n *ast.ReturnStmt, last bool) {
	p.w.WriteKeyword("return")
	if n.Arg != nil {
		p.w.WriteHardSpace()
		p.emitExpr(n.Arg)
	}
	p.writeStmtTerminator(last)
}

func (p *Printer) emitThrowStmt(n *ast.ThrowStmt, last bool) {
	p.w.WriteKeyword("throw")
	p.w.WriteHardSpace()
	p.emitExpr(n.Arg)
	p.writeStmtTerminator(last)
}

func (p *Printer) emitBreakStmt(n *ast.BreakStmt, last bool) {
	p.w.WriteKeyword("break")
	if n.Label != nil {
		p.w.WriteHardSpace()
		p.emitIdent(n.Label)
	}
	p.writeStmtTerminator(last)
}

func (p *Printer) emitContinueStmt(n *ast.ContinueStmt, last bool) {
	p.w.WriteKeyword("continue")
	if n.Label != nil {
		p.w.WriteHardSpace()
		p.emitIdent(n.Label)
	}
	p.writeStmtTerminator(last)
}

func (p *Printer) emitIfStmt(n *ast.IfStmt) {
	p.w.WriteKeyword("if")
	p.w.WriteSpace()
	p.w.WritePunct("(")
	p.emitExpr(n.Test)
	p.w.WritePunct(")")
	p.w.WriteSpace()
	p.emitStmt(n.Cons, false)
	if n.Alt == nil {
		return
	}
	if _, isBlock := n.Cons.(*ast.BlockStmt); isBlock {
		p.w.WriteSpace()
	} else {
		p.w.WriteLine()
	}
	p.w.WriteKeyword("else")
	if _, isElseIf := n.Alt.(*ast.IfStmt); isElseIf {
		p.w.WriteHardSpace()
	} else {
		p.w.WriteSpace()
	}
	p.emitStmt(n.Alt, false)
}

func (p *Printer) emitForStmt(n *ast.ForStmt) {
	p.w.WriteKeyword("for")
	p.w.WriteSpace()
	p.w.WritePunct("(")
	p.emitForInit(n.Init)
	p.w.WritePunct(";")
	if n.Test != nil {
		p.w.WriteSpace()
		p.emitExpr(n.Test)
	}
	p.w.WritePunct(";")
	if n.Update != nil {
		p.w.WriteSpace()
		p.emitExpr(n.Update)
	}
	p.w.WritePunct(")")
	p.w.WriteSpace()
	p.emitStmt(n.Body, false)
}

func (p *Printer) emitForInit(init ast.Node) {
	switch x := init.(type) {
	case nil:
	case *ast.VarStmt:
		p.emitVarStmtHeader(x)
	case ast.Expr:
		p.emitExpr(x)
	default:
		malformed("unexpected for-init type %T", init)
	}
}

// emitVarStmtHeader writes a VarStmt's declarator list without its
// terminating semicolon, for use inside a for-head where the semicolon is
// the loop's own, not the declaration's.
func (p *Printer) emitVarStmtHeader(n *ast.VarStmt) {
	p.w.WriteKeyword(n.Kind.String())
	p.w.WriteHardSpace()
	for i, d := range n.Decls {
		if i > 0 {
			p.w.WritePunct(",")
			p.w.WriteSpace()
		}
		p.emitPattern(d.Id)
		if d.Init != nil {
			p.w.WriteSpace()
			p.w.WriteOperator("=")
			p.w.WriteSpace()
			p.emitExpr(d.Init)
		}
	}
}

func (p *Printer) emitForInStmt(n *ast.ForInStmt) {
	p.emitForEachHeader("for", false, n.Left, n.Right, "in", n.Body)
}

func (p *Printer) emitForOfStmt(n *ast.ForOfStmt) {
	p.emitForEachHeader("for", n.Await, n.Left, n.Right, "of", n.Body)
}

func (p *Printer) emitForEachHeader(kw string, await bool, left ast.Node, right ast.Expr, joiner string, body ast.Stmt) {
	p.w.WriteKeyword(kw)
	if await {
		p.w.WriteHardSpace()
		p.w.WriteKeyword("await")
	}
	p.w.WriteSpace()
	p.w.WritePunct("(")
	p.emitForInit(left)
	p.w.WriteHardSpace()
	p.w.WriteKeyword(joiner)
	p.w.WriteHardSpace()
	p.emitExpr(right)
	p.w.WritePunct(")")
	p.w.WriteSpace()
	p.emitStmt(body, false)
}

func (p *Printer) emitWhileStmt(n *ast.WhileStmt) {
	p.w.WriteKeyword("while")
	p.w.WriteSpace()
	p.w.WritePunct("(")
	p.emitExpr(n.Test)
	p.w.WritePunct(")")
	p.w.WriteSpace()
	p.emitStmt(n.Body, false)
}

func (p *Printer) emitDoWhileStmt(n *ast.DoWhileStmt, last bool) {
	p.w.WriteKeyword("do")
	p.w.WriteSpace()
	p.emitStmt(n.Body, false)
	p.w.WriteSpace()
	p.w.WriteKeyword("while")
	p.w.WriteSpace()
	p.w.WritePunct("(")
	p.emitExpr(n.Test)
	p.w.WritePunct(")")
	p.writeStmtTerminator(last)
}

func (p *Printer) emitSwitchStmt(n *ast.SwitchStmt) {
	p.w.WriteKeyword("switch")
	p.w.WriteSpace()
	p.w.WritePunct("(")
	p.emitExpr(n.Disc)
	p.w.WritePunct(")")
	p.w.WriteSpace()
	items := make([]spanned, len(n.Cases))
	for i, c := range n.Cases {
		items[i] = c
	}
	var list []spanned
	if n.Cases != nil {
		list = items
	}
	p.emitList(switchBodySpan(n), list, listfmt.CaseBlockClauses|listfmt.CurlyBraces, false, func(item spanned, i int) {
		p.emitSwitchCase(item.(*ast.SwitchCase))
	})
}

func switchBodySpan(n *ast.SwitchStmt) span.Span {
	if len(n.Cases) == 0 {
		return span.Synthetic()
	}
	first, last := n.Cases[0].Span(), n.Cases[len(n.Cases)-1].Span()
	return span.Span{Lo: first.Lo, Hi: last.Hi, Base: first.Base}
}

func (p *Printer) emitSwitchCase(c *ast.SwitchCase) {
	if c.Test != nil {
		p.w.WriteKeyword("case")
		p.w.WriteHardSpace()
		p.emitExpr(c.Test)
	} else {
		p.w.WriteKeyword("default")
	}
	p.w.WritePunct(":")
	if len(c.Body) == 0 {
		return
	}
	if len(c.Body) == 1 {
		// spec.md §8 scenario 6: a single-statement clause stays on one
		// line ("case 1: doIt();"); only a multi-statement body earns the
		// indented multiline layout below.
		p.w.WriteSpace()
		p.emitStmt(c.Body[0], false)
		return
	}
	p.emitStmtSequence(stmtsToNodes(c.Body), listfmt.CaseOrDefaultClauseStatements, false)
}

func (p *Printer) emitLabeledStmt(n *ast.LabeledStmt, last bool) {
	p.emitIdent(n.Label)
	p.w.WritePunct(":")
	p.w.WriteSpace()
	p.emitStmt(n.Body, last)
}

func (p *Printer) emitTryStmt(n *ast.TryStmt) {
	p.w.WriteKeyword("try")
	p.w.WriteSpace()
	p.emitBlockStmt(n.Block)
	if n.Handler != nil {
		p.w.WriteSpace()
		p.w.WriteKeyword("catch")
		if n.Handler.Param != nil {
			p.w.WriteSpace()
			p.w.WritePunct("(")
			p.emitPattern(n.Handler.Param)
			p.w.WritePunct(")")
		}
		p.w.WriteSpace()
		p.emitBlockStmt(n.Handler.Body)
	}
	if n.Finalizer != nil {
		p.w.WriteSpace()
		p.w.WriteKeyword("finally")
		p.w.WriteSpace()
		p.emitBlockStmt(n.Finalizer)
	}
}
