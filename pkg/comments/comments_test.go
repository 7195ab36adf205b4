package comments_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsprint/pkg/comments"
)

func TestEmptyStoreReturnsNoComments(t *testing.T) {
	var s comments.Store = comments.Empty{}
	require.Nil(t, s.LeadingAt(0))
	require.Nil(t, s.TrailingAt(42))
}

func TestSliceStoreGroupsByPosition(t *testing.T) {
	leading := []comments.Comment{
		{Pos: 10, Text: " first", Line: true},
		{Pos: 10, Text: " second", Line: true},
		{Pos: 20, Text: " other", Line: true},
	}
	s := comments.NewSliceStore(leading, nil)

	at10 := s.LeadingAt(10)
	require.Len(t, at10, 2)
	require.Equal(t, " first", at10[0].Text)
	require.Equal(t, " second", at10[1].Text)

	require.Len(t, s.LeadingAt(20), 1)
	require.Empty(t, s.LeadingAt(999))
	require.Empty(t, s.TrailingAt(10))
}

func TestSliceStoreLeadingAndTrailingAreIndependent(t *testing.T) {
	leading := []comments.Comment{{Pos: 5, Text: "lead"}}
	trailing := []comments.Comment{{Pos: 5, Text: "trail"}}
	s := comments.NewSliceStore(leading, trailing)

	require.Equal(t, "lead", s.LeadingAt(5)[0].Text)
	require.Equal(t, "trail", s.TrailingAt(5)[0].Text)
}
