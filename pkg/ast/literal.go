package ast

// NumberLiteral is a numeric literal. When OriginalText is non-empty the
// node's span is original and OriginalText is the verbatim source
// spelling (spec.md §4.4 "Number": "if an original span is present, use
// its source text verbatim" — preserves 0x/0o/1e3 forms; R2's double-dot
// rule keys off this same text containing no '.').
type NumberLiteral struct {
	Value        float64
	OriginalText string // "" if synthetic; use Value instead
	expr
}

// HasOriginalText reports whether this literal's token text must be taken
// verbatim from OriginalText rather than formatted from Value.
func (n *NumberLiteral) HasOriginalText() bool { return n.OriginalText != "" }

// StringLiteral is a string literal. OriginalText, when non-empty, is the
// verbatim quoted source text (quote style and escapes preserved); Value
// is the decoded string used only when no original text is available.
type StringLiteral struct {
	Value        string
	OriginalText string
	Quote        byte // '"' or '\'' — used only when OriginalText == ""
	expr
}

// RegexLiteral is a regular expression literal: /Pattern/Flags.
type RegexLiteral struct {
	Pattern string
	Flags   string
	expr
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Value bool
	expr
}

// NullLiteral is `null`.
type NullLiteral struct {
	expr
}

// TemplateLiteral is a (possibly tagged) template literal. Quasis holds
// the static text segments and Exprs the interpolated expressions; R4
// requires len(Quasis) == len(Exprs)+1 (spec.md §4.4, §4.6).
type TemplateLiteral struct {
	Quasis []string
	Exprs  []Expr
	expr
}

// TaggedTemplateExpr is `tag` + a TemplateLiteral.
type TaggedTemplateExpr struct {
	Tag   Expr
	Quasi *TemplateLiteral
	expr
}
