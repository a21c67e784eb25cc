// internal/domain/assetroute/route.go
package assetroute

import "strings"

// RouteID identifies a renderable 3D asset (e.g. "jarron3"). Stateless and
// derived; never persisted.
type RouteID string

// DefaultRoute is returned for any category outside the known table.
// Deliberate safe fallback: the visualization screen always has something
// to open.
const DefaultRoute = RouteID("jarron1")

// slotCount is the number of fixed render slots per category.
const slotCount = 4

// prefixByCategory maps category id (lowercased) to its asset name prefix.
// 4 categories × 4 positions = 16 addressable assets.
var prefixByCategory = map[string]string{
	"jarrones": "jarron",
	"lamparas": "lampara",
	"cuadros":  "cuadro",
	"sofas":    "sofa",
}

// Resolve maps (categoryId, position) to a RouteID.
// - categoryId is matched case-insensitively
// - position is clamped to [0,3] before use
// - unknown categories resolve to DefaultRoute, never an error
func Resolve(categoryID string, position int) RouteID {
	prefix, ok := prefixByCategory[strings.ToLower(strings.TrimSpace(categoryID))]
	if !ok {
		return DefaultRoute
	}
	return RouteID(prefix + digit(clamp(position)))
}

// KnownRoutes returns all 16 addressable route ids in category order.
func KnownRoutes() []RouteID {
	prefixes := []string{"jarron", "lampara", "cuadro", "sofa"}
	out := make([]RouteID, 0, len(prefixes)*slotCount)
	for _, p := range prefixes {
		for i := 0; i < slotCount; i++ {
			out = append(out, RouteID(p+digit(i)))
		}
	}
	return out
}

// IsKnown reports whether id is one of the 16 fixed routes.
func IsKnown(id RouteID) bool {
	for _, r := range KnownRoutes() {
		if r == id {
			return true
		}
	}
	return false
}

func (r RouteID) String() string { return string(r) }

func clamp(position int) int {
	if position < 0 {
		return 0
	}
	if position > slotCount-1 {
		return slotCount - 1
	}
	return position
}

// digit renders the 1-based slot number for a 0-based position.
func digit(position int) string {
	return string(rune('1' + position))
}
