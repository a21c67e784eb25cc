package favorites

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDSet(t *testing.T) {
	s := NewIDSet("p1", "p2", "")
	require.Len(t, s, 2)
	require.True(t, s.Has("p1"))
	require.False(t, s.Has("p3"))
	require.False(t, s.Has(""))

	var nilSet IDSet
	require.False(t, nilSet.Has("p1"))
}

func TestIDSetClone(t *testing.T) {
	s := NewIDSet("p1")
	c := s.Clone()
	c["p2"] = struct{}{}
	require.False(t, s.Has("p2"))
	require.True(t, c.Has("p1"))
}

func TestIDSetIDs(t *testing.T) {
	s := NewIDSet("a", "b")
	ids := s.IDs()
	require.ElementsMatch(t, []string{"a", "b"}, ids)
}
