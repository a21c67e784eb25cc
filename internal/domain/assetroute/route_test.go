package assetroute

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		position   int
		want       RouteID
	}{
		{"jarrones slot 0", "jarrones", 0, "jarron1"},
		{"jarrones slot 2", "jarrones", 2, "jarron3"},
		{"lamparas slot 3", "lamparas", 3, "lampara4"},
		{"cuadros slot 1", "cuadros", 1, "cuadro2"},
		{"sofas slot 0", "sofas", 0, "sofa1"},
		{"case insensitive category", "Jarrones", 1, "jarron2"},
		{"upper case category", "SOFAS", 2, "sofa3"},
		{"negative position clamps to 0", "cuadros", -5, "cuadro1"},
		{"large position clamps to 3", "lamparas", 99, "lampara4"},
		{"unknown category any position", "desconocido", 2, DefaultRoute},
		{"unknown category negative", "desconocido", -1, DefaultRoute},
		{"empty category", "", 0, DefaultRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.categoryID, tt.position))
		})
	}
}

func TestResolveAlwaysLandsOnKnownRoute(t *testing.T) {
	// Whatever the input, the result is one of the 16 fixed routes
	// (DefaultRoute is itself one of them).
	inputs := []string{"jarrones", "lamparas", "cuadros", "sofas", "desconocido", "", "LAMPARAS"}
	for _, cat := range inputs {
		for pos := -3; pos <= 6; pos++ {
			got := Resolve(cat, pos)
			require.True(t, IsKnown(got), "cat=%q pos=%d got=%q", cat, pos, got)
		}
	}
}

func TestKnownRoutes(t *testing.T) {
	routes := KnownRoutes()
	require.Len(t, routes, 16)

	seen := map[RouteID]bool{}
	for _, r := range routes {
		require.False(t, seen[r], "duplicate route %q", r)
		seen[r] = true
	}
	require.True(t, seen[DefaultRoute])
	require.True(t, seen["sofa4"])
	require.False(t, IsKnown("jarron5"))
}
