package printer

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"jsprint/pkg/ast"
	"jsprint/pkg/token"
)

// startsWithAlphaNum reports whether s begins with a letter, digit, or
// underscore/dollar — the set of characters that can continue an
// identifier-like token. Used by R1 to decide whether `void`/`typeof`/
// `delete` need a following space to avoid gluing onto their operand.
func startsWithAlphaNum(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

// isPrefixUpdate reports whether e is a prefix `++x`/`--x` with the given
// operator, and isUnaryOp reports whether e is a unary expression with the
// given operator — the two operand shapes R1 special-cases for `+`/`-`.
func isPrefixUpdate(e ast.Expr, op token.UpdateOp) bool {
	u, ok := e.(*ast.UpdateExpr)
	return ok && u.Prefix && u.Op == op
}

func isUnaryOp(e ast.Expr, op token.UnaryOp) bool {
	u, ok := e.(*ast.UnaryExpr)
	return ok && u.Op == op
}

// shouldEmitWhitespaceBeforeUnaryOperand implements R1 (spec.md §4.6): a
// hard space is mandatory between a unary operator and its operand when
// omitting it would change what re-parses. `void`/`typeof`/`delete` need
// it whenever the operand looks like it could continue the keyword's
// identifier characters; `+`/`-` need it only when the operand is the
// specific same-symbol prefix update or unary that would otherwise
// collapse (`+ +x` vs `++x`, `- --x` vs `---x`).
func shouldEmitWhitespaceBeforeUnaryOperand(op token.UnaryOp, arg ast.Expr, operandText string) bool {
	if op.IsWordOperator() {
		return startsWithAlphaNum(operandText)
	}
	switch op {
	case token.Plus:
		return isPrefixUpdate(arg, token.Increment) || isUnaryOp(arg, token.Plus)
	case token.Minus:
		return isPrefixUpdate(arg, token.Decrement) || isUnaryOp(arg, token.Minus)
	default:
		return false
	}
}

// needsDoubleDotForMemberAccess implements R2 (spec.md §4.6): `n.prop`
// needs two dots when n is a numeric literal whose emitted text contains
// no '.', since a single dot would instead parse as that number's decimal
// point (`1.toString` is a syntax error; `1 .toString` or `1..toString`
// are the two ways to disambiguate, and this printer always chooses the
// double-dot form per spec.md's scenario 1).
func needsDoubleDotForMemberAccess(obj ast.Expr, objText string) bool {
	if _, ok := obj.(*ast.NumberLiteral); !ok {
		return false
	}
	return !strings.Contains(objText, ".")
}

// firstEmittedText returns a prefix of what emitExpr would eventually
// write for e, just long enough for startsWithAlphaNum to classify its
// first character. It never fully renders e; it only recurses into the
// leftmost sub-expression of constructs whose first written token is that
// sub-expression's own first token (member/call chains, binary/assignment
// left-hand sides, the first element of a sequence).
func firstEmittedText(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.NumberLiteral:
		return formatNumberText(x)
	case *ast.StringLiteral:
		return formatStringText(x)
	case *ast.BooleanLiteral:
		if x.Value {
			return "true"
		}
		return "false"
	case *ast.NullLiteral:
		return "null"
	case *ast.RegexLiteral:
		return "/"
	case *ast.TemplateLiteral:
		return "`"
	case *ast.TaggedTemplateExpr:
		return firstEmittedText(x.Tag)
	case *ast.ArrayLiteral:
		return "["
	case *ast.ObjectLiteral:
		return "{"
	case *ast.SpreadElement:
		return "..."
	case *ast.FunctionExpr:
		if x.Async {
			return "async"
		}
		return "function"
	case *ast.ArrowFunctionExpr:
		if x.Async {
			return "async"
		}
		return "("
	case *ast.ClassExpr:
		return "class"
	case *ast.MemberExpr:
		return firstEmittedText(x.Object)
	case *ast.CallExpr:
		return firstEmittedText(x.Callee)
	case *ast.NewExpr:
		return "new"
	case *ast.UnaryExpr:
		return string(x.Op)
	case *ast.UpdateExpr:
		if x.Prefix {
			return string(x.Op)
		}
		return firstEmittedText(x.Arg)
	case *ast.BinaryExpr:
		return firstEmittedText(x.Left)
	case *ast.AssignExpr:
		return firstEmittedText(x.Left)
	case *ast.ConditionalExpr:
		return firstEmittedText(x.Test)
	case *ast.SequenceExpr:
		if len(x.Exprs) > 0 {
			return firstEmittedText(x.Exprs[0])
		}
		return ""
	case *ast.ParenExpr:
		return "("
	case *ast.AwaitExpr:
		return "await"
	case *ast.YieldExpr:
		return "yield"
	default:
		return ""
	}
}

// formatNumberText renders a NumberLiteral's token text: the original
// source snippet verbatim when present (spec.md §4.4 "Number"), otherwise
// a shortest-round-trip decimal/±Infinity rendering of Value.
func formatNumberText(n *ast.NumberLiteral) string {
	if n.HasOriginalText() {
		return n.OriginalText
	}
	if math.IsInf(n.Value, 1) {
		return "Infinity"
	}
	if math.IsInf(n.Value, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// formatStringText renders a StringLiteral's token text: the original
// quoted snippet verbatim when present, otherwise Value re-quoted and
// escaped per JSON-string rules extended with \xNN/\uNNNN/\u{...}
// (spec.md §4.4 "String").
func formatStringText(s *ast.StringLiteral) string {
	if s.OriginalText != "" {
		return s.OriginalText
	}
	quote := s.Quote
	if quote != '\'' && quote != '"' {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s.Value {
		switch {
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			b.WriteString("\\x" + hex2(uint8(r)))
		case r > 0xFFFF:
			b.WriteString("\\u{" + strconv.FormatInt(int64(r), 16) + "}")
		case r > 0x7e:
			b.WriteString(`\u` + hex4(uint16(r)))
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func hex2(v uint8) string {
	s := strconv.FormatUint(uint64(v), 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func hex4(v uint16) string {
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
