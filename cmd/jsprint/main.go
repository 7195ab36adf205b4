// Command jsprint is a demo front end for jsprint/pkg/printer: it builds a
// small hand-written AST (no parser ships with this module — parsing is
// explicitly out of scope for the core) and emits it to stdout, the way
// cmd/jindo's compile subcommand drove jindo's own printer end to end.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"jsprint/pkg/ast"
	"jsprint/pkg/printer"
	"jsprint/pkg/token"
)

var (
	flagMinify = flag.Bool("minify", false, "suppress optional whitespace and line terminators")
	flagIndent = flag.String("indent", "  ", "string written per indent level")
	flagTarget = flag.String("target", "esnext", "target ECMAScript version: es5, es2017, esnext")
	flagVerify = flag.Bool("verify", false, "compare output against the driver's known-good rendering and highlight any mismatch")
)

func main() {
	flag.Parse()

	target, err := parseTarget(*flagTarget)
	if err != nil {
		log.Fatal(err)
	}

	cfg := printer.Config{
		Minify:     *flagMinify,
		IndentUnit: *flagIndent,
		Target:     target,
	}

	var buf bytes.Buffer
	p := printer.NewToWriter(&buf, nil, nil, cfg)
	if _, err := p.EmitModule(demoModule()); err != nil {
		log.Fatal(err)
	}

	out := buf.String()
	fmt.Print(out)

	if *flagVerify {
		if err := verify(out); err != nil {
			log.Fatal(err)
		}
	}
}

func parseTarget(s string) (token.EcmaVersion, error) {
	switch s {
	case "es5":
		return token.ES5, nil
	case "es2017":
		return token.ES2017, nil
	case "esnext":
		return token.ESNext, nil
	default:
		return 0, fmt.Errorf("jsprint: unknown -target %q (want es5, es2017, or esnext)", s)
	}
}

// demoModule hand-builds a module exercising the scenarios spec.md §8
// names explicitly: double-dot numeric member access, the mandatory space
// between two adjacent `+` unary/update operators, a template literal, a
// named import with a default specifier, a multiline object literal, both
// switch-case layouts (single-statement inline, multi-statement indented),
// and an async function returning an awaited call.
func demoModule() *ast.Module {
	ident := func(name string) *ast.Ident { return &ast.Ident{Name: name} }

	importDecl := &ast.ImportDecl{
		Default: ident("d"),
		Named: []*ast.ImportSpecifier{
			{Imported: ident("a"), Local: ident("b")},
		},
		Source: &ast.StringLiteral{Value: "m", OriginalText: `"m"`},
	}

	doubleDot := &ast.VarStmt{
		Kind: ast.Const,
		Decls: []*ast.VarDeclarator{{
			Id: &ast.IdentPattern{Name: "s"},
			Init: &ast.MemberExpr{
				Object:   &ast.NumberLiteral{Value: 1, OriginalText: "1"},
				Property: ident("toString"),
			},
		}},
	}

	doublePlus := &ast.ExprStmt{
		X: &ast.UnaryExpr{
			Op: token.Plus,
			Arg: &ast.UpdateExpr{
				Op:     token.Increment,
				Prefix: true,
				Arg:    ident("x"),
			},
		},
	}

	tmpl := &ast.VarStmt{
		Kind: ast.Const,
		Decls: []*ast.VarDeclarator{{
			Id: &ast.IdentPattern{Name: "t"},
			Init: &ast.TemplateLiteral{
				Quasis: []string{"a", "b", "c"},
				Exprs:  []ast.Expr{ident("x"), ident("y")},
			},
		}},
	}

	objLit := &ast.VarStmt{
		Kind: ast.Const,
		Decls: []*ast.VarDeclarator{{
			Id: &ast.IdentPattern{Name: "o"},
			Init: &ast.ObjectLiteral{
				Properties: []*ast.Property{
					{Kind: ast.PropInit, Key: ident("k1"), Value: ident("v1")},
					{Kind: ast.PropInit, Key: ident("k2"), Value: ident("v2")},
				},
			},
		}},
	}

	sw := &ast.SwitchStmt{
		Disc: ident("x"),
		Cases: []*ast.SwitchCase{
			{
				Test: &ast.NumberLiteral{Value: 1, OriginalText: "1"},
				Body: []ast.Stmt{
					&ast.ExprStmt{X: &ast.CallExpr{Callee: ident("doIt")}},
				},
			},
			{
				Test: &ast.NumberLiteral{Value: 2, OriginalText: "2"},
				Body: []ast.Stmt{
					&ast.ExprStmt{X: &ast.CallExpr{Callee: ident("stepOne")}},
					&ast.ExprStmt{X: &ast.CallExpr{Callee: ident("stepTwo")}},
					&ast.BreakStmt{},
				},
			},
		},
	}

	asyncFn := &ast.FunctionDecl{
		Async: true,
		Name:  ident("load"),
		Body: &ast.BlockStmt{Body: []ast.Stmt{
			&ast.ReturnStmt{Arg: &ast.AwaitExpr{
				Arg: &ast.CallExpr{
					Callee: ident("fetch"),
					Args:   []ast.Expr{&ast.StringLiteral{Value: "u", OriginalText: `"u"`}},
				},
			}},
		}},
	}

	return &ast.Module{
		Body: []ast.ModuleItem{
			importDecl,
			doubleDot,
			doublePlus,
			tmpl,
			objLit,
			sw,
			asyncFn,
		},
	}
}

// verify re-emits demoModule under the default (non-minified, ESNext)
// configuration and reports whether out already matches it: a match is
// reported with color.Green; a mismatch with color.Red, followed by both
// renderings on stderr. It
// exists only to give the -verify flag something concrete to check; it is
// not a substitute for pkg/printer's own tests.
func verify(out string) error {
	var want bytes.Buffer
	p := printer.NewToWriter(&want, nil, nil, printer.Config{IndentUnit: "  ", Target: token.ESNext})
	if _, err := p.EmitModule(demoModule()); err != nil {
		return err
	}
	if out == want.String() {
		color.Green("jsprint: -verify OK, output matches the default rendering")
		return nil
	}
	color.Red("jsprint: -verify MISMATCH")
	fmt.Fprintln(os.Stderr, "--- got ---")
	fmt.Fprintln(os.Stderr, out)
	fmt.Fprintln(os.Stderr, "--- want (default config) ---")
	fmt.Fprintln(os.Stderr, want.String())
	return fmt.Errorf("jsprint: output does not match default rendering")
}
