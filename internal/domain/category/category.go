// internal/domain/category/category.go
package category

import "strings"

// Category is one of the fixed product groupings the app supports.
// - ID is the navigation key (e.g. "jarrones")
// - Label is the display title
// - TypeValue is the filter key used against the product collection
type Category struct {
	ID        string `json:"id" firestore:"id"`
	Label     string `json:"label" firestore:"label"`
	TypeValue string `json:"typeValue" firestore:"typeValue"`
}

// fixed is the static registry. Order matters: the first entry is the
// designated fallback for unknown category ids.
var fixed = []Category{
	{ID: "jarrones", Label: "Jarrones", TypeValue: "jarron"},
	{ID: "lamparas", Label: "Lámparas", TypeValue: "lampara"},
	{ID: "cuadros", Label: "Cuadros", TypeValue: "cuadro"},
	{ID: "sofas", Label: "Sofás", TypeValue: "sofa"},
}

// Fixed returns a copy of the static registry.
func Fixed() []Category {
	out := make([]Category, len(fixed))
	copy(out, fixed)
	return out
}

// Default returns the registry's first category (the fallback).
func Default() Category {
	return fixed[0]
}

// Resolve returns the category whose ID matches exactly (case-sensitive).
// Unknown ids resolve to the default category instead of failing; the
// permissive fallback is intentional and callers rely on it.
func Resolve(categoryID string) Category {
	id := strings.TrimSpace(categoryID)
	for _, c := range fixed {
		if c.ID == id {
			return c
		}
	}
	return Default()
}

// IsKnown reports whether categoryID matches a registry entry exactly.
func IsKnown(categoryID string) bool {
	id := strings.TrimSpace(categoryID)
	for _, c := range fixed {
		if c.ID == id {
			return true
		}
	}
	return false
}
