// internal/adapters/in/http/ra/handler/visualization_handler.go
package raHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"decoraia/internal/domain/assetroute"
)

// VisualizationHandler resolves a route id to its downloadable model.
//
// - GET /ra/visualizacion/{route} → { route, url, ... }
//
// Unknown routes answer 404; missing objects for known routes do too.
type VisualizationHandler struct {
	store assetroute.Store
}

func NewVisualizationHandler(store assetroute.Store) http.Handler {
	return &VisualizationHandler{store: store}
}

func (h *VisualizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if h.store == nil {
		writeErr(w, http.StatusServiceUnavailable, "model store is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		writeErr(w, http.StatusBadRequest, "route is required")
		return
	}
	raw := strings.TrimSpace(path[i+1:])
	if raw == "" || raw == "visualizacion" {
		writeErr(w, http.StatusBadRequest, "route is required")
		return
	}

	route := assetroute.RouteID(strings.ToLower(raw))
	asset, err := h.store.Resolve(r.Context(), route)
	if err != nil {
		if errors.Is(err, assetroute.ErrAssetNotFound) {
			writeErr(w, http.StatusNotFound, "unknown route")
			return
		}
		log.Printf("[ra_visualization_handler] resolve failed route=%q err=%v", route, err)
		writeErr(w, http.StatusInternalServerError, "failed to resolve model")
		return
	}

	writeJSON(w, http.StatusOK, asset)
}
