package printer

import (
	"jsprint/pkg/ast"
	"jsprint/pkg/listfmt"
	"jsprint/pkg/span"
)

// emitModuleItem dispatches a module-level item: either a statement
// (handled by emitStmt, since ast.Stmt also implements ast.ModuleItem) or
// one of the import/export declaration forms that only exist at module
// scope (spec.md §6, emitModule).
func (p *Printer) emitModuleItem(n ast.ModuleItem, last bool) {
	switch x := n.(type) {
	case ast.Stmt:
		p.emitStmt(x, last)
	case *ast.ImportDecl:
		p.emitImportDecl(x)
	case *ast.ExportNamedDecl:
		p.emitExportNamedDecl(x)
	case *ast.ExportDefaultDecl:
		p.emitExportDefaultDecl(x)
	case *ast.ExportAllDecl:
		p.emitExportAllDecl(x)
	default:
		malformed("unexpected module item type %T", n)
	}
}

// emitImportDecl implements spec.md's import forms: `import Default from
// "m"`, `import * as Namespace from "m"`, `import { Named... } from "m"`,
// and the two-specifier combination `import Default, { Named... } from
// "m"` / `import Default, * as Namespace from "m"` (spec.md §9: at most
// two of {Default, Namespace, Named} populated at once).
func (p *Printer) emitImportDecl(n *ast.ImportDecl) {
	p.w.WriteKeyword("import")
	wroteSpecifier := false
	if n.Default != nil {
		p.w.WriteHardSpace()
		p.emitIdent(n.Default)
		wroteSpecifier = true
	}
	if n.Namespace != nil {
		if wroteSpecifier {
			p.w.WritePunct(",")
			p.w.WriteSpace()
		} else {
			p.w.WriteHardSpace()
		}
		p.w.WriteOperator("*")
		p.w.WriteHardSpace()
		p.w.WriteKeyword("as")
		p.w.WriteHardSpace()
		p.emitIdent(n.Namespace)
		wroteSpecifier = true
	} else if n.Named != nil {
		if wroteSpecifier {
			p.w.WritePunct(",")
			p.w.WriteSpace()
		} else {
			p.w.WriteHardSpace()
		}
		p.emitImportSpecifiers(n.Named)
		wroteSpecifier = true
	}
	if wroteSpecifier {
		p.w.WriteHardSpace()
		p.w.WriteKeyword("from")
		p.w.WriteHardSpace()
	} else {
		p.w.WriteHardSpace()
	}
	p.emitStringLiteral(n.Source)
	p.w.WritePunct(";")
}

func (p *Printer) emitImportSpecifiers(specs []*ast.ImportSpecifier) {
	items := make([]spanned, len(specs))
	for i, s := range specs {
		items[i] = s
	}
	p.emitList(specifierListSpan(specs), items, listfmt.NamedImportsOrExportsElements, false, func(item spanned, i int) {
		spec := item.(*ast.ImportSpecifier)
		p.emitIdent(spec.Imported)
		if spec.Local != spec.Imported {
			p.w.WriteHardSpace()
			p.w.WriteKeyword("as")
			p.w.WriteHardSpace()
			p.emitIdent(spec.Local)
		}
	})
}

func (p *Printer) emitExportNamedDecl(n *ast.ExportNamedDecl) {
	p.w.WriteKeyword("export")
	if n.Decl != nil {
		p.w.WriteHardSpace()
		p.emitStmt(n.Decl, false)
		return
	}
	p.w.WriteHardSpace()
	p.emitExportSpecifiers(n.Specifiers)
	if n.Source != nil {
		p.w.WriteHardSpace()
		p.w.WriteKeyword("from")
		p.w.WriteHardSpace()
		p.emitStringLiteral(n.Source)
	}
	p.w.WritePunct(";")
}

func (p *Printer) emitExportSpecifiers(specs []*ast.ExportSpecifier) {
	items := make([]spanned, len(specs))
	for i, s := range specs {
		items[i] = s
	}
	p.emitList(exportSpecifierListSpan(specs), items, listfmt.NamedImportsOrExportsElements, false, func(item spanned, i int) {
		spec := item.(*ast.ExportSpecifier)
		p.emitIdent(spec.Local)
		if spec.Exported != spec.Local {
			p.w.WriteHardSpace()
			p.w.WriteKeyword("as")
			p.w.WriteHardSpace()
			p.emitIdent(spec.Exported)
		}
	})
}

func (p *Printer) emitExportDefaultDecl(n *ast.ExportDefaultDecl) {
	p.w.WriteKeyword("export")
	p.w.WriteHardSpace()
	p.w.WriteKeyword("default")
	p.w.WriteHardSpace()
	switch x := n.Decl.(type) {
	case ast.Stmt:
		p.emitStmt(x, false)
	case ast.Expr:
		p.emitExpr(x)
		p.w.WritePunct(";")
	default:
		malformed("unexpected export default payload type %T", n.Decl)
	}
}

func specifierListSpan(specs []*ast.ImportSpecifier) span.Span {
	if len(specs) == 0 {
		return span.Synthetic()
	}
	first, last := specs[0].Span(), specs[len(specs)-1].Span()
	return span.Span{Lo: first.Lo, Hi: last.Hi, Base: first.Base}
}

func exportSpecifierListSpan(specs []*ast.ExportSpecifier) span.Span {
	if len(specs) == 0 {
		return span.Synthetic()
	}
	first, last := specs[0].Span(), specs[len(specs)-1].Span()
	return span.Span{Lo: first.Lo, Hi: last.Hi, Base: first.Base}
}

func (p *Printer) emitExportAllDecl(n *ast.ExportAllDecl) {
	p.w.WriteKeyword("export")
	p.w.WriteHardSpace()
	p.w.WriteOperator("*")
	if n.Exported != nil {
		p.w.WriteHardSpace()
		p.w.WriteKeyword("as")
		p.w.WriteHardSpace()
		p.emitIdent(n.Exported)
	}
	p.w.WriteHardSpace()
	p.w.WriteKeyword("from")
	p.w.WriteHardSpace()
	p.emitStringLiteral(n.Source)
	p.w.WritePunct(";")
}
