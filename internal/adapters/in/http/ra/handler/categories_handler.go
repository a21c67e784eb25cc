// internal/adapters/in/http/ra/handler/categories_handler.go
package raHandler

import (
	"net/http"

	categorydom "decoraia/internal/domain/category"
)

// CategoriesHandler serves the fixed category registry.
type CategoriesHandler struct{}

func NewCategoriesHandler() http.Handler {
	return &CategoriesHandler{}
}

func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categorydom.Fixed(),
		"default":    categorydom.Default().ID,
	})
}
