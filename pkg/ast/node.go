// Package ast declares the AST node variants the printer walks. spec.md §1
// treats the AST definition as an external collaborator ("a separate
// module supplies the node variants"); no such module travels with this
// corpus, so the variants live here, modeled directly on the teacher's
// pkg/jindo/ast: a closed, enumerable set of node structs, each embedding
// a small marker type (node/expr/stmt/pattern/moduleItem) the way the
// teacher embeds node/expr/stmt/decl.
//
// The core only ever consumes these types (spec.md §3: "The core
// consumes, never constructs, nodes"); nothing in this package builds an
// AST from source text — that is the excluded parser's job.
package ast

import "jsprint/pkg/span"

// Node is implemented by every AST variant.
type Node interface {
	Span() span.Span
	SetSpan(span.Span)
	aNode()
}

type node struct {
	Sp span.Span
}

func (n *node) Span() span.Span      { return n.Sp }
func (n *node) SetSpan(s span.Span)  { n.Sp = s }
func (*node) aNode()                 {}

// Expr is implemented by every expression and type-position node.
type Expr interface {
	Node
	aExpr()
}

type expr struct{ node }

func (*expr) aExpr() {}

// Stmt is implemented by every statement, including the declaration forms
// (function/class/var) that ECMAScript's grammar treats as statements.
type Stmt interface {
	Node
	aStmt()
	aModuleItem()
}

type stmt struct{ node }

func (*stmt) aStmt()       {}
func (*stmt) aModuleItem() {}

// Pattern is implemented by binding-pattern nodes: identifiers, object and
// array destructuring patterns, defaults, and rest elements, wherever a
// binding position (parameter, declarator, catch clause) appears.
type Pattern interface {
	Node
	aPattern()
}

type pattern struct{ node }

func (*pattern) aPattern() {}

// ModuleItem is implemented by every node that may appear directly in a
// Module's body: statements, and the import/export declaration forms that
// are not statements in ECMAScript's grammar.
type ModuleItem interface {
	Node
	aModuleItem()
}

type moduleItem struct{ node }

func (*moduleItem) aModuleItem() {}

// Script is the top-level node for a non-module program (spec.md §6,
// emitScript).
type Script struct {
	Body []Stmt
	node
}

// Module is the top-level node for an ECMAScript module (spec.md §6,
// emitModule).
type Module struct {
	Body []ModuleItem
	node
}

// Ident is a bare identifier used as an expression, a binding name, a
// property key, or a label.
type Ident struct {
	Name string
	expr
}

// IdentPattern is an identifier used in a binding position.
type IdentPattern struct {
	Name string
	pattern
}
