// Package span describes byte ranges in original source text, together
// with the syntactic-context tag that distinguishes original nodes from
// ones synthesized after parsing.
package span

import "fmt"

// Span is an immutable byte range [Lo, Hi) in some original source file,
// plus a syntactic-context tag. A zero Ctxt paired with a non-zero Hi marks
// the span as original; any non-zero Ctxt, or a zero-width span at the
// origin, marks it synthetic (see IsSynthetic).
type Span struct {
	Lo, Hi uint32
	Ctxt   uint32
	Base   *PosBase
}

// PosBase names the file a Span's offsets are relative to, mirroring the
// teacher's position.PosBase.
type PosBase struct {
	filename string
}

func NewFileBase(filename string) *PosBase {
	return &PosBase{filename: filename}
}

func (b *PosBase) Filename() string {
	if b == nil {
		return ""
	}
	return b.filename
}

// Synthetic returns the zero-width, context-free span used for nodes that
// have no original source text.
func Synthetic() Span {
	return Span{}
}

// New returns an original span over [lo, hi) in base.
func New(base *PosBase, lo, hi uint32) Span {
	return Span{Lo: lo, Hi: hi, Base: base}
}

// IsSynthetic reports whether s carries no usable original source text:
// either it is the zero-width origin span, or it carries a non-empty
// syntactic-context tag (I3 in spec.md §3).
func (s Span) IsSynthetic() bool {
	return (s.Lo == 0 && s.Hi == 0) || s.Ctxt != 0
}

// IsOriginal is the complement of IsSynthetic.
func (s Span) IsOriginal() bool {
	return !s.IsSynthetic()
}

func (s Span) Len() uint32 {
	if s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d-%d", s.Base.Filename(), s.Lo, s.Hi)
}

// WithCtxt returns a copy of s tagged with the given syntactic context,
// marking it synthetic regardless of its byte range.
func (s Span) WithCtxt(ctxt uint32) Span {
	s.Ctxt = ctxt
	return s
}
