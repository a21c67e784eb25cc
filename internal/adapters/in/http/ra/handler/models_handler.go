// internal/adapters/in/http/ra/handler/models_handler.go
package raHandler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "decoraia/internal/application/usecase"
	"decoraia/internal/domain/assetroute"
	categorydom "decoraia/internal/domain/category"
	favdom "decoraia/internal/domain/favorites"
	productdom "decoraia/internal/domain/product"

	"decoraia/internal/adapters/in/http/middleware"
)

// favoritesListener: per-request snapshot reads (first emission only).
type favoritesListener interface {
	ListenIDs(ctx context.Context, userID string) (<-chan favdom.IDSet, error)
}

// firstSnapshotTimeout caps how long a models request waits for the caller's
// favorites snapshot before answering without membership flags.
const firstSnapshotTimeout = 2 * time.Second

// ModelsHandler serves the session view: the rendered category, up to four
// products in stable order, their slot routes, and (for signed-in callers)
// favorite membership.
type ModelsHandler struct {
	catalog   *usecase.CatalogUsecase
	favorites favoritesListener
}

func NewModelsHandler(catalog *usecase.CatalogUsecase, favorites favoritesListener) http.Handler {
	return &ModelsHandler{catalog: catalog, favorites: favorites}
}

type modelItem struct {
	productdom.ProductAR
	Route    assetroute.RouteID `json:"route"`
	Favorito bool               `json:"favorito"`
}

type modelsResponse struct {
	Style     string               `json:"style"`
	Category  categorydom.Category `json:"category"`
	Items     []modelItem          `json:"items"`
	Favorites *favoritesSnapshot   `json:"favorites,omitempty"`
}

type favoritesSnapshot struct {
	State string   `json:"state"`
	IDs   []string `json:"ids,omitempty"`
}

func (h *ModelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if h.catalog == nil {
		writeErr(w, http.StatusInternalServerError, "models handler is not configured")
		return
	}

	q := r.URL.Query()
	style := strings.TrimSpace(q.Get("style"))
	if style == "" {
		writeErr(w, http.StatusBadRequest, "style is required")
		return
	}
	categoryID := strings.TrimSpace(q.Get("categoria"))
	if categoryID == "" {
		categoryID = strings.TrimSpace(q.Get("categoryId"))
	}

	cat := h.catalog.ResolveCategory(categoryID)

	items, err := h.catalog.LoadProducts(r.Context(), style, cat.TypeValue)
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		var cle *usecase.CatalogLoadError
		if errors.As(err, &cle) {
			log.Printf("[ra_models_handler] load failed style=%q categoria=%q err=%v", style, cat.ID, err)
			writeErr(w, http.StatusBadGateway, cle.Message())
			return
		}
		writeErr(w, http.StatusInternalServerError, "failed to load models")
		return
	}

	resp := modelsResponse{
		Style:    style,
		Category: cat,
		Items:    make([]modelItem, 0, len(items)),
	}

	var favs favdom.IDSet
	if uid, ok := middleware.CurrentUserUID(r); ok {
		resp.Favorites = &favoritesSnapshot{State: "live"}
		favs = h.snapshotFavorites(r.Context(), uid)
		if favs == nil {
			resp.Favorites.State = "unavailable"
		} else {
			resp.Favorites.IDs = favs.IDs()
		}
	}

	for i, p := range items {
		resp.Items = append(resp.Items, modelItem{
			ProductAR: p,
			Route:     assetroute.Resolve(cat.ID, i),
			Favorito:  favs.Has(p.ID),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// snapshotFavorites reads the first emission of the caller's favorites stream.
// Returns nil when the stream cannot be opened or the snapshot does not arrive
// in time; the view then omits membership rather than failing the request.
func (h *ModelsHandler) snapshotFavorites(parent context.Context, uid string) favdom.IDSet {
	if h.favorites == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(parent, firstSnapshotTimeout)
	defer cancel()

	ch, err := h.favorites.ListenIDs(ctx, uid)
	if err != nil {
		log.Printf("[ra_models_handler] favorites snapshot failed uid=%s err=%v", maskUID(uid), err)
		return nil
	}

	select {
	case set, ok := <-ch:
		if !ok {
			return nil
		}
		return set
	case <-ctx.Done():
		return nil
	}
}
