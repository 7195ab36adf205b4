package ast

import "jsprint/pkg/token"

// ArrayLiteral is `[elements]`. A nil entry in Elements is an elision
// hole (`[1, , 3]`); HasTrailingComma mirrors the "source had trailing
// comma" bit spec.md §4.3 step 6 says list formats carry on the AST.
type ArrayLiteral struct {
	Elements         []Expr
	HasTrailingComma bool
	expr
}

// PropKind distinguishes object literal property forms.
type PropKind uint8

const (
	PropInit PropKind = iota
	PropGet
	PropSet
	PropMethod
	PropSpread
)

// Property is one entry of an ObjectLiteral.
type Property struct {
	Kind      PropKind
	Key       Expr // ignored when Kind == PropSpread
	Computed  bool
	Value     Expr // the spread argument when Kind == PropSpread
	Shorthand bool
	Async     bool
	Generator bool
	node
}

// ObjectLiteral is `{ properties }`.
type ObjectLiteral struct {
	Properties       []*Property
	HasTrailingComma bool
	expr
}

// SpreadElement is `...Arg`, valid in array literals and call arguments.
type SpreadElement struct {
	Arg Expr
	expr
}

// FunctionExpr is a function expression, named or anonymous.
type FunctionExpr struct {
	Async     bool
	Generator bool
	Name      *Ident // nil for anonymous
	Params    []Pattern
	Body      *BlockStmt
	expr
}

// ArrowFunctionExpr is `(params) => body`. When ExprBody is true, Body
// holds an Expr; otherwise Body holds a *BlockStmt.
type ArrowFunctionExpr struct {
	Async    bool
	Params   []Pattern
	Body     Node
	ExprBody bool
	expr
}

// MemberExpr is `Object.Property` or, when Computed, `Object[Property]`.
// Optional marks `?.` access (optional chaining).
type MemberExpr struct {
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
	expr
}

// CallExpr is `Callee(Args...)`. Optional marks `?.(`. HasTrailingComma
// mirrors the source's trailing comma after the last argument, honored
// only when the target EcmaVersion allows it (spec.md §3, "target:
// EcmaVersion — governs trailing-comma allowance in function calls").
type CallExpr struct {
	Callee           Expr
	Args             []Expr
	Optional         bool
	HasTrailingComma bool
	expr
}

// NewExpr is `new Callee(Args...)`. HasArgs == false means no argument
// list was written at all (bare `new Foo`) and Args is not printed; with
// HasArgs == true a nil or empty Args prints `new Foo()`, matching
// spec.md §4.4's "argument list is optional".
type NewExpr struct {
	Callee Expr
	Args   []Expr
	HasArgs bool
	expr
}

// UnaryExpr is a prefix unary operator applied to Arg.
type UnaryExpr struct {
	Op  token.UnaryOp
	Arg Expr
	expr
}

// UpdateExpr is `++x`/`x++`/`--x`/`x--`.
type UpdateExpr struct {
	Op     token.UpdateOp
	Arg    Expr
	Prefix bool
	expr
}

// BinaryExpr covers arithmetic, relational, and logical (&&, ||, ??)
// operators; Op carries the literal operator text.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	expr
}

// AssignExpr is `Left Op Right` (Op is "=", "+=", "&&=", ...).
type AssignExpr struct {
	Op    string
	Left  Expr
	Right Expr
	expr
}

// ConditionalExpr is `Test ? Cons : Alt`.
type ConditionalExpr struct {
	Test Expr
	Cons Expr
	Alt  Expr
	expr
}

// SequenceExpr is a comma expression `a, b, c`.
type SequenceExpr struct {
	Exprs []Expr
	expr
}

// ParenExpr is an explicitly parenthesized expression. The parser records
// grouping parentheses as their own node, so the printer re-emits them
// verbatim rather than reconstructing precedence.
type ParenExpr struct {
	X Expr
	expr
}

// AwaitExpr is `await Arg`.
type AwaitExpr struct {
	Arg Expr
	expr
}

// YieldExpr is `yield [Arg]` or, when Delegate, `yield* Arg`.
type YieldExpr struct {
	Delegate bool
	Arg      Expr // nil for a bare `yield`
	expr
}
