package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"jsprint/pkg/ast"
	"jsprint/pkg/span"
)

// Every node variant must report the span it was constructed with, and
// SetSpan must replace it — the one contract pkg/printer relies on for
// every "prev.hi != parent.hi" comment-placement check in the list
// emitter.
func TestNodeSpanRoundTrips(t *testing.T) {
	s := span.New(span.NewFileBase("a.js"), 4, 9)
	n := &ast.Ident{Name: "x"}
	n.SetSpan(s)

	if diff := cmp.Diff(s, n.Span(), cmp.AllowUnexported(span.PosBase{})); diff != "" {
		t.Errorf("Span() mismatch after SetSpan (-want +got):\n%s", diff)
	}
}

// ignoreNodeBases hides the embedded, unexported node/expr/stmt/moduleItem
// marker types every AST variant carries, so go-cmp can compare two trees
// on their exported, semantically meaningful fields only — the golden-AST
// comparison SPEC_FULL.md's domain stack section wires go-cmp in for.
var ignoreNodeBases = cmpopts.IgnoreUnexported(
	ast.Module{},
	ast.ImportDecl{},
	ast.ExprStmt{},
	ast.CallExpr{},
	ast.Ident{},
	ast.StringLiteral{},
)

func TestModuleTreeStructuralEquality(t *testing.T) {
	build := func() *ast.Module {
		return &ast.Module{
			Body: []ast.ModuleItem{
				&ast.ImportDecl{
					Default: &ast.Ident{Name: "d"},
					Source:  &ast.StringLiteral{Value: "m", OriginalText: `"m"`},
				},
				&ast.ExprStmt{X: &ast.CallExpr{
					Callee: &ast.Ident{Name: "f"},
					Args:   []ast.Expr{&ast.Ident{Name: "a"}},
				}},
			},
		}
	}

	a, b := build(), build()
	if diff := cmp.Diff(a, b, ignoreNodeBases); diff != "" {
		t.Errorf("two independently built but structurally identical modules differ (-a +b):\n%s", diff)
	}
}

// A changed identifier name is caught, guarding against ignoreNodeBases
// going so broad it hides real differences too.
func TestModuleTreeStructuralInequality(t *testing.T) {
	a := &ast.Module{Body: []ast.ModuleItem{
		&ast.ExprStmt{X: &ast.Ident{Name: "x"}},
	}}
	b := &ast.Module{Body: []ast.ModuleItem{
		&ast.ExprStmt{X: &ast.Ident{Name: "y"}},
	}}
	if cmp.Diff(a, b, ignoreNodeBases) == "" {
		t.Fatal("expected a diff between modules with differently named identifiers")
	}
}
