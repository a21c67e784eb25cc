// internal/application/usecase/session_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"decoraia/internal/domain/assetroute"
	categorydom "decoraia/internal/domain/category"
	favdom "decoraia/internal/domain/favorites"
	"decoraia/internal/domain/identity"
	productdom "decoraia/internal/domain/product"
)

// SessionState is the catalog-loading side of the session state machine.
type SessionState string

const (
	SessionIdle    SessionState = "idle"
	SessionLoading SessionState = "loading"
	SessionReady   SessionState = "ready"
	SessionFailed  SessionState = "failed"
)

// FavoritesState is the independent favorites sub-state. It never blocks or
// fails the product-loading path.
type FavoritesState string

const (
	FavoritesIdle            FavoritesState = "idle"
	FavoritesUnauthenticated FavoritesState = "unauthenticated"
	FavoritesSubscribing     FavoritesState = "subscribing"
	FavoritesLive            FavoritesState = "live"
)

// SessionViewState is the consistent view the presentation layer renders.
// Owned exclusively by SessionController; mutated only by completed catalog
// loads, favorites emissions, and explicit transitions.
type SessionViewState struct {
	State          SessionState           `json:"state"`
	Style          string                 `json:"style"`
	Category       categorydom.Category   `json:"category"`
	Items          []productdom.ProductAR `json:"items"`
	FavoriteIDs    favdom.IDSet           `json:"-"`
	FavoritesState FavoritesState         `json:"favoritesState"`

	// ErrorMessage is set on SessionFailed; FavoritesMessage carries the
	// sign-in guidance when unauthenticated.
	ErrorMessage     string    `json:"errorMessage,omitempty"`
	FavoritesMessage string    `json:"favoritesMessage,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Loading reports whether the catalog load is still in flight.
func (s SessionViewState) Loading() bool { return s.State == SessionLoading }

// Navigator receives the session's navigation intents. Concrete routing is
// an external collaborator (the UI shell).
type Navigator interface {
	OpenVisualization(route assetroute.RouteID)
	GoHome()
	GoProfile()
	GoBack()
}

// SessionListener observes view-state transitions.
type SessionListener func(SessionViewState)

// SessionController orchestrates one category-browsing session:
// resolve category, load products (≤ MaxRenderSlots), subscribe favorites,
// translate taps into asset routes and favorite toggles.
//
// Catalog loading and the favorites subscription run as two independent
// tasks; neither blocks the other. Re-entering with new parameters cancels
// outstanding work keyed to the old ones — a stale subscription delivering
// another user's favorites into the current view is a correctness bug.
type SessionController struct {
	catalog   *CatalogUsecase
	favorites *FavoritesSynchronizer
	ident     identity.Provider
	nav       Navigator
	listener  SessionListener
	clock     Clock

	mu     sync.Mutex
	st     SessionViewState
	uid    string
	cancel context.CancelFunc
	gen    uint64
}

func NewSessionController(
	catalog *CatalogUsecase,
	favorites *FavoritesSynchronizer,
	ident identity.Provider,
	nav Navigator,
	listener SessionListener,
) *SessionController {
	return &SessionController{
		catalog:   catalog,
		favorites: favorites,
		ident:     ident,
		nav:       nav,
		listener:  listener,
		clock:     systemClock{},
		st: SessionViewState{
			State:          SessionIdle,
			FavoritesState: FavoritesIdle,
			FavoriteIDs:    favdom.IDSet{},
		},
	}
}

// NewSessionControllerWithClock is useful for tests.
func NewSessionControllerWithClock(
	catalog *CatalogUsecase,
	favorites *FavoritesSynchronizer,
	ident identity.Provider,
	nav Navigator,
	listener SessionListener,
	clock Clock,
) *SessionController {
	c := NewSessionController(catalog, favorites, ident, nav, listener)
	if clock != nil {
		c.clock = clock
	}
	return c
}

// Enter starts (or restarts) the session for (style, categoryId). Outstanding
// work from a previous entry is canceled first. Unknown category ids fall
// back to the default category, never an error.
func (c *SessionController) Enter(ctx context.Context, style, categoryID string) {
	if c == nil || c.catalog == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	st := strings.TrimSpace(style)
	cat := c.catalog.ResolveCategory(categoryID)

	uid := ""
	authed := false
	if c.ident != nil {
		uid, authed = c.ident.CurrentUserID()
		uid = strings.TrimSpace(uid)
		authed = authed && uid != ""
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	sessCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.uid = ""
	if authed {
		c.uid = uid
	}

	c.st = SessionViewState{
		State:          SessionLoading,
		Style:          st,
		Category:       cat,
		Items:          nil,
		FavoriteIDs:    favdom.IDSet{},
		FavoritesState: FavoritesSubscribing,
		UpdatedAt:      c.clock.Now(),
	}
	if !authed {
		c.st.FavoritesState = FavoritesUnauthenticated
		c.st.FavoritesMessage = AuthRequiredMessage
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	go c.loadProducts(sessCtx, gen, st, cat.TypeValue)
	if authed {
		go c.subscribeFavorites(sessCtx, gen, uid)
	}
}

func (c *SessionController) loadProducts(ctx context.Context, gen uint64, style, typeValue string) {
	items, err := c.catalog.LoadProducts(ctx, style, typeValue)

	c.mu.Lock()
	if c.gen != gen || ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	if err != nil {
		msg := err.Error()
		var cle *CatalogLoadError
		if errors.As(err, &cle) {
			msg = cle.Message()
		}
		// Failed keeps no stale items alongside the error.
		c.st.State = SessionFailed
		c.st.ErrorMessage = msg
		c.st.Items = nil
	} else {
		c.st.State = SessionReady
		c.st.ErrorMessage = ""
		c.st.Items = items
	}
	c.st.UpdatedAt = c.clock.Now()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *SessionController) subscribeFavorites(ctx context.Context, gen uint64, uid string) {
	if c.favorites == nil {
		return
	}
	err := c.favorites.Subscribe(ctx, uid, func(set favdom.IDSet) {
		c.mu.Lock()
		if c.gen != gen {
			c.mu.Unlock()
			return
		}
		c.st.FavoriteIDs = set
		c.st.FavoritesState = FavoritesLive
		c.st.FavoritesMessage = ""
		c.st.UpdatedAt = c.clock.Now()
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
	})
	if err == nil {
		return
	}

	log.Printf("[session_usecase] favorites subscribe failed uid=%q err=%v", uid, err)
	c.mu.Lock()
	if c.gen == gen {
		if errors.Is(err, ErrAuthRequired) {
			c.st.FavoritesState = FavoritesUnauthenticated
			c.st.FavoritesMessage = AuthRequiredMessage
			c.st.UpdatedAt = c.clock.Now()
		}
		// Other stream failures keep the sub-state at subscribing; the next
		// Enter restarts it. Browsing is never blocked by favorites.
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SelectItem resolves the tapped item to an asset route and emits the
// open-visualization intent. The position is the item's index in the current
// list, clamped to the render-slot range (an item not found indexes as -1 and
// clamps to the first slot, matching the screen's behavior).
func (c *SessionController) SelectItem(p productdom.ProductAR) assetroute.RouteID {
	if c == nil {
		return assetroute.DefaultRoute
	}
	c.mu.Lock()
	idx := -1
	for i, it := range c.st.Items {
		if it.ID == p.ID {
			idx = i
			break
		}
	}
	catID := c.st.Category.ID
	c.mu.Unlock()

	route := assetroute.Resolve(catID, idx)
	if c.nav != nil {
		c.nav.OpenVisualization(route)
	}
	return route
}

// ToggleFavorite adds or removes p based on the last-seen favorites snapshot
// (not a locally predicted new state). No-op when unauthenticated. Write
// failures are absorbed: the subscription remains authoritative and the view
// is never mutated here.
func (c *SessionController) ToggleFavorite(ctx context.Context, p productdom.ProductAR) {
	if c == nil || c.favorites == nil {
		return
	}
	c.mu.Lock()
	uid := c.uid
	has := c.st.FavoriteIDs.Has(p.ID)
	c.mu.Unlock()

	if uid == "" {
		log.Printf("[session_usecase] toggle ignored (unauthenticated) productId=%q", p.ID)
		return
	}

	var err error
	if has {
		err = c.favorites.Remove(ctx, uid, p.ID)
	} else {
		err = c.favorites.Add(ctx, uid, p)
	}
	if err != nil {
		log.Printf("[session_usecase] toggle absorbed uid=%q productId=%q err=%v", uid, p.ID, err)
	}
}

// Snapshot returns an independent copy of the current view state.
func (c *SessionController) Snapshot() SessionViewState {
	if c == nil {
		return SessionViewState{State: SessionIdle, FavoritesState: FavoritesIdle}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels outstanding work and the favorites subscription.
func (c *SessionController) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.mu.Unlock()
	if c.favorites != nil {
		c.favorites.Unsubscribe()
	}
}

func (c *SessionController) GoHome() {
	if c != nil && c.nav != nil {
		c.nav.GoHome()
	}
}

func (c *SessionController) GoProfile() {
	if c != nil && c.nav != nil {
		c.nav.GoProfile()
	}
}

func (c *SessionController) GoBack() {
	if c != nil && c.nav != nil {
		c.nav.GoBack()
	}
}

func (c *SessionController) snapshotLocked() SessionViewState {
	snap := c.st
	if c.st.Items != nil {
		snap.Items = make([]productdom.ProductAR, len(c.st.Items))
		copy(snap.Items, c.st.Items)
	}
	snap.FavoriteIDs = c.st.FavoriteIDs.Clone()
	return snap
}

func (c *SessionController) notify(snap SessionViewState) {
	if c.listener != nil {
		c.listener(snap)
	}
}
