package ast

import "jsprint/pkg/span"

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	X Expr
	stmt
}

// EmptyStmt is a lone `;`.
type EmptyStmt struct {
	stmt
}

// BlockStmt is `{ Body... }`. Rbrace optionally carries the original span
// of the closing brace, the way the teacher's ast.BlockStmt carries
// Rbrace; the printer and source-map helpers do not read it.
type BlockStmt struct {
	Body   []Stmt
	Rbrace span.Span
	stmt
}

// VarKind distinguishes var/let/const declarations.
type VarKind uint8

const (
	Var VarKind = iota
	Let
	Const
)

func (k VarKind) String() string {
	switch k {
	case Let:
		return "let"
	case Const:
		return "const"
	default:
		return "var"
	}
}

// VarDeclarator is one `Id = Init` entry of a VarStmt.
type VarDeclarator struct {
	Id   Pattern
	Init Expr // nil if no initializer
	node
}

// VarStmt is `var|let|const decls...;`.
type VarStmt struct {
	Kind  VarKind
	Decls []*VarDeclarator
	stmt
}

// FunctionDecl is a function declaration. It is a Stmt: ECMAScript's
// grammar treats function/class declarations as StatementListItems.
type FunctionDecl struct {
	Async     bool
	Generator bool
	Name      *Ident
	Params    []Pattern
	Body      *BlockStmt
	stmt
}

// ClassMemberKind distinguishes class member forms.
type ClassMemberKind uint8

const (
	MethodMember ClassMemberKind = iota
	GetterMember
	SetterMember
	ConstructorMember
	FieldMember
)

// ClassMember is one entry of a class body.
type ClassMember struct {
	Kind      ClassMemberKind
	Static    bool
	Computed  bool
	Async     bool
	Generator bool
	Key       Expr
	Params    []Pattern // Method/Getter/Setter/Constructor
	Body      *BlockStmt
	Value     Expr // FieldMember initializer, nil if none
	node
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	Name    *Ident
	Super   Expr // nil if no `extends`
	Members []*ClassMember
	stmt
}

// ReturnStmt is `return Arg;`.
type ReturnStmt struct {
	Arg Expr // nil for bare `return;`
	stmt
}

// ThrowStmt is `throw Arg;`.
type ThrowStmt struct {
	Arg Expr
	stmt
}

// BreakStmt is `break [Label];`.
type BreakStmt struct {
	Label *Ident // nil if unlabeled
	stmt
}

// ContinueStmt is `continue [Label];`.
type ContinueStmt struct {
	Label *Ident
	stmt
}

// IfStmt is `if (Test) Cons [else Alt]`.
type IfStmt struct {
	Test Expr
	Cons Stmt
	Alt  Stmt // nil if no else branch
	stmt
}

// ForStmt is a classic C-style for loop. Init and Update may be nil; Init
// holds either an Expr or a *VarStmt.
type ForStmt struct {
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
	stmt
}

// ForInStmt is `for (Left in Right) Body`. Left holds either an Expr
// (assignment target) or a *VarStmt declaring exactly one declarator.
type ForInStmt struct {
	Left  Node
	Right Expr
	Body  Stmt
	stmt
}

// ForOfStmt is `for [await] (Left of Right) Body`.
type ForOfStmt struct {
	Await bool
	Left  Node
	Right Expr
	Body  Stmt
	stmt
}

// WhileStmt is `while (Test) Body`.
type WhileStmt struct {
	Test Expr
	Body Stmt
	stmt
}

// DoWhileStmt is `do Body while (Test);`.
type DoWhileStmt struct {
	Body Stmt
	Test Expr
	stmt
}

// SwitchCase is one `case Test:` or `default:` arm. Test == nil marks the
// default clause.
type SwitchCase struct {
	Test Expr
	Body []Stmt
	node
}

// SwitchStmt is `switch (Disc) { Cases... }`.
type SwitchStmt struct {
	Disc  Expr
	Cases []*SwitchCase
	stmt
}

// LabeledStmt is `Label: Body`.
type LabeledStmt struct {
	Label *Ident
	Body  Stmt
	stmt
}

// CatchClause is the `catch (Param) { Body }` arm of a TryStmt. Param is
// nil for a parameter-less catch.
type CatchClause struct {
	Param Pattern
	Body  *BlockStmt
	node
}

// TryStmt is `try Block [catch (...) {...}] [finally {...}]`.
type TryStmt struct {
	Block     *BlockStmt
	Handler   *CatchClause // nil if no catch
	Finalizer *BlockStmt   // nil if no finally
	stmt
}
