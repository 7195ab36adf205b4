package span_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsprint/pkg/span"
)

func TestSyntheticIsZeroValue(t *testing.T) {
	require.True(t, span.Synthetic().IsSynthetic())
	require.False(t, span.Synthetic().IsOriginal())
}

func TestOriginalSpanWithNonZeroRange(t *testing.T) {
	base := span.NewFileBase("a.js")
	s := span.New(base, 3, 9)
	require.True(t, s.IsOriginal())
	require.False(t, s.IsSynthetic())
	require.Equal(t, uint32(6), s.Len())
	require.Equal(t, "a.js", s.Base.Filename())
}

// A non-zero Ctxt always marks a span synthetic, even over a non-empty
// byte range (spec.md §3: "a node is synthetic iff lo == hi == 0 or ctxt
// is non-empty").
func TestWithCtxtForcesSynthetic(t *testing.T) {
	base := span.NewFileBase("a.js")
	s := span.New(base, 3, 9).WithCtxt(1)
	require.True(t, s.IsSynthetic())
}

func TestLenClampsWhenHiBeforeLo(t *testing.T) {
	s := span.Span{Lo: 10, Hi: 4}
	require.Equal(t, uint32(0), s.Len())
}

func TestNilBaseFilenameIsEmpty(t *testing.T) {
	var base *span.PosBase
	require.Equal(t, "", base.Filename())
}
