package category

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("known ids resolve exactly", func(t *testing.T) {
		for _, c := range Fixed() {
			got := Resolve(c.ID)
			require.Equal(t, c, got)
		}
	})

	t.Run("unknown id falls back to default", func(t *testing.T) {
		for _, id := range []string{"desconocido", "", "JARRONES", "mesas"} {
			got := Resolve(id)
			require.Equal(t, Default(), got, "id=%q", id)
		}
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		require.Equal(t, Default(), Resolve("Lamparas"))
		require.False(t, IsKnown("Lamparas"))
		require.True(t, IsKnown("lamparas"))
	})
}

func TestFixedRegistry(t *testing.T) {
	cats := Fixed()
	require.NotEmpty(t, cats)
	require.Equal(t, "jarrones", cats[0].ID)

	seen := map[string]bool{}
	for _, c := range cats {
		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.Label)
		require.NotEmpty(t, c.TypeValue)
		require.False(t, seen[c.ID], "duplicate id %q", c.ID)
		seen[c.ID] = true
	}
}

func TestFixedReturnsCopy(t *testing.T) {
	cats := Fixed()
	cats[0].ID = "mutated"
	require.Equal(t, "jarrones", Fixed()[0].ID)
}
