// Package token declares the lexical categories the Text Writer uses to
// decide whether two adjacent fragments need a separating space (spec.md
// §4.1, table T1), and the small enumerations ([EcmaVersion], operators)
// the printer's node emitters switch on.
package token

// Class is the lexical category of the most recently emitted output
// fragment. The writer consults it, together with the class of the next
// fragment, to decide whether a separator is mandatory (spec.md §4.1).
type Class uint8

const (
	None Class = iota
	Keyword
	Punct
	Ident
	Number
	String
	Operator
	Regex
	Line
)

type class = Class

const classCount = Line + 1

var classNames = [classCount]string{
	None:     "none",
	Keyword:  "keyword",
	Punct:    "punct",
	Ident:    "ident",
	Number:   "number",
	String:   "string",
	Operator: "operator",
	Regex:    "regex",
	Line:     "line",
}

func (c class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "class(?)"
}

// IsIdentLike groups the three classes table T1 treats identically: ident,
// keyword, and number all require a hard space before another member of the
// same group.
func (c class) IsIdentLike() bool {
	return c == Ident || c == Keyword || c == Number
}

// EcmaVersion governs trailing-comma allowance in call argument lists
// (spec.md §3, Emission configuration).
type EcmaVersion int

const (
	ES5 EcmaVersion = iota
	ES2017
	ESNext
)

// AllowsTrailingCallComma reports whether the target version accepts a
// trailing comma after the last argument of a call expression. ES5 engines
// reject it; ES2017 added it.
func (v EcmaVersion) AllowsTrailingCallComma() bool {
	return v >= ES2017
}

// UnaryOp enumerates the prefix unary operators the lexical safety rules
// (spec.md §4.6, R1) special-case.
type UnaryOp string

const (
	Void   UnaryOp = "void"
	Typeof UnaryOp = "typeof"
	Delete UnaryOp = "delete"
	Plus   UnaryOp = "+"
	Minus  UnaryOp = "-"
	Not    UnaryOp = "!"
	BitNot UnaryOp = "~"
)

// IsWordOperator reports whether op is spelled as an alphabetic keyword
// rather than a punctuation character, which changes whether the writer
// must treat it as a keyword token for spacing purposes.
func (op UnaryOp) IsWordOperator() bool {
	switch op {
	case Void, Typeof, Delete:
		return true
	default:
		return false
	}
}

// UpdateOp enumerates ++ and --, used by both Update and prefix-Unary
// lexical safety checks (R1).
type UpdateOp string

const (
	Increment UpdateOp = "++"
	Decrement UpdateOp = "--"
)
