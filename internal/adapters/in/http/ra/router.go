// internal/adapters/in/http/ra/router.go
package ra

import (
	"log"
	"net/http"
)

// Deps is the buyer-facing (AR catalog) handler set.
type Deps struct {
	Categories http.Handler

	// GET /ra/models?style=...&categoria=... (session view)
	Models http.Handler

	// POST /ra/favorites, DELETE /ra/favorites/{id},
	// GET /ra/favorites/stream (SSE)
	Favorites http.Handler

	// GET /ra/visualizacion/{route} (route → model URL)
	Visualization http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so Cloud Run won't crash).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[ra.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers buyer-facing AR routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// categories
	handleSafe(mux, "/ra/categories", deps.Categories, "Categories")
	handleSafe(mux, "/ra/categories/", deps.Categories, "Categories")

	// models (session view)
	handleSafe(mux, "/ra/models", deps.Models, "Models")
	handleSafe(mux, "/ra/models/", deps.Models, "Models")

	// favorites (writes + SSE stream)
	handleSafe(mux, "/ra/favorites", deps.Favorites, "Favorites")
	handleSafe(mux, "/ra/favorites/", deps.Favorites, "Favorites")

	// visualization (route → model URL)
	handleSafe(mux, "/ra/visualizacion", deps.Visualization, "Visualization")
	handleSafe(mux, "/ra/visualizacion/", deps.Visualization, "Visualization")
}
