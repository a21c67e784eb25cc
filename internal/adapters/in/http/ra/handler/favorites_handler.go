// internal/adapters/in/http/ra/handler/favorites_handler.go
package raHandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	usecase "decoraia/internal/application/usecase"
	productdom "decoraia/internal/domain/product"

	"decoraia/internal/adapters/in/http/middleware"
)

// FavoritesHandler serves favorite writes and the live membership stream.
//
// - POST   /ra/favorites           body: product snapshot → add
// - DELETE /ra/favorites/{id}      remove (idempotent)
// - GET    /ra/favorites/stream    SSE, one event per remote emission
//
// Every endpoint requires a signed-in caller; the auth middleware puts the
// uid into the request context.
type FavoritesHandler struct {
	sync   *usecase.FavoritesSynchronizer
	stream favoritesListener
}

func NewFavoritesHandler(sync *usecase.FavoritesSynchronizer, stream favoritesListener) http.Handler {
	return &FavoritesHandler{sync: sync, stream: stream}
}

func (h *FavoritesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.sync == nil {
		writeErr(w, http.StatusInternalServerError, "favorites handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, usecase.AuthRequiredMessage)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/stream"):
		h.handleStream(w, r, uid)

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/favorites"):
		h.handleAdd(w, r, uid)

	case r.Method == http.MethodDelete:
		h.handleRemove(w, r, uid, path)

	default:
		methodNotAllowed(w)
	}
}

func (h *FavoritesHandler) handleAdd(w http.ResponseWriter, r *http.Request, uid string) {
	var p productdom.ProductAR
	if err := readJSON(r, &p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}

	p, err := productdom.New(p.ID, p.Style, p.TypeValue, p.DisplayName, p.ThumbnailURL)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.sync.Add(r.Context(), uid, p); err != nil {
		log.Printf("[ra_favorites_handler] add failed uid=%s productId=%q err=%v", maskUID(uid), p.ID, err)
		writeFavoriteErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "added", "id": p.ID})
}

func (h *FavoritesHandler) handleRemove(w http.ResponseWriter, r *http.Request, uid, path string) {
	// id from /ra/favorites/{id}, fallback to ?id=
	id := ""
	if i := strings.LastIndex(path, "/"); i >= 0 {
		if tail := path[i+1:]; tail != "favorites" {
			id = tail
		}
	}
	if id == "" {
		id = strings.TrimSpace(r.URL.Query().Get("id"))
	}
	if id == "" {
		writeErr(w, http.StatusBadRequest, "product id is required")
		return
	}

	if err := h.sync.Remove(r.Context(), uid, id); err != nil {
		log.Printf("[ra_favorites_handler] remove failed uid=%s productId=%q err=%v", maskUID(uid), id, err)
		writeFavoriteErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed", "id": id})
}

// handleStream forwards the user's favorites stream as SSE. One event per
// remote emission, each carrying the full id set. The subscription lives as
// long as the request context: client disconnect tears it down.
func (h *FavoritesHandler) handleStream(w http.ResponseWriter, r *http.Request, uid string) {
	if h.stream == nil {
		writeErr(w, http.StatusInternalServerError, "favorites stream is not configured")
		return
	}
	fl, ok := w.(http.Flusher)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx := r.Context()
	ch, err := h.stream.ListenIDs(ctx, uid)
	if err != nil {
		log.Printf("[ra_favorites_handler] stream open failed uid=%s err=%v", maskUID(uid), err)
		writeErr(w, http.StatusInternalServerError, "failed to open stream")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fl.Flush()

	log.Printf("[ra_favorites_handler] stream open uid=%s", maskUID(uid))

	for {
		select {
		case <-ctx.Done():
			return
		case set, ok := <-ch:
			if !ok {
				return
			}
			ids := set.IDs()
			sort.Strings(ids)
			payload, err := json.Marshal(map[string][]string{"ids": ids})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: favorites\ndata: %s\n\n", payload)
			fl.Flush()
		}
	}
}

func writeFavoriteErr(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrAuthRequired) {
		writeErr(w, http.StatusUnauthorized, usecase.AuthRequiredMessage)
		return
	}
	if errors.Is(err, usecase.ErrFavoritesInvalidArgument) {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	var fwe *usecase.FavoriteWriteError
	if errors.As(err, &fwe) {
		writeErr(w, http.StatusBadGateway, fmt.Sprintf("favorite %s failed", fwe.Op))
		return
	}
	writeErr(w, http.StatusInternalServerError, "favorite update failed")
}
