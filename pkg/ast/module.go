package ast

// ClassExpr is a class expression (as opposed to ClassDecl, a statement).
type ClassExpr struct {
	Name    *Ident // nil for an anonymous class expression
	Super   Expr
	Members []*ClassMember
	expr
}

// ImportSpecifier is one `Imported [as Local]` entry of a named import
// list.
type ImportSpecifier struct {
	Imported *Ident
	Local    *Ident // == Imported when there is no "as" clause
	node
}

// ImportDecl is an import declaration. At most two of {Default, Namespace,
// Named} are populated at once, per the "source asserts at most two
// specifier entries total" note in spec.md §9 (Default plus one of
// Namespace or Named).
type ImportDecl struct {
	Default   *Ident
	Namespace *Ident // `* as Namespace`
	Named     []*ImportSpecifier
	Source    *StringLiteral
	moduleItem
}

// ExportSpecifier is one `Local [as Exported]` entry of a named export
// list.
type ExportSpecifier struct {
	Local    *Ident
	Exported *Ident // == Local when there is no "as" clause
	node
}

// ExportNamedDecl is either `export <Decl>` (Decl non-nil, Specifiers
// nil) or `export { Specifiers... } [from Source]`.
type ExportNamedDecl struct {
	Decl       Stmt
	Specifiers []*ExportSpecifier
	Source     *StringLiteral // non-nil only for a re-export form
	moduleItem
}

// ExportDefaultDecl is `export default Decl`; Decl holds an Expr, a
// *FunctionDecl, or a *ClassDecl.
type ExportDefaultDecl struct {
	Decl Node
	moduleItem
}

// ExportAllDecl is `export * [as Exported] from Source`.
type ExportAllDecl struct {
	Exported *Ident // nil for a bare `export * from "m"`
	Source   *StringLiteral
	moduleItem
}
