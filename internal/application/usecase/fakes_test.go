package usecase

import (
	"context"
	"sync"
	"time"

	"decoraia/internal/domain/assetroute"
	favdom "decoraia/internal/domain/favorites"
	productdom "decoraia/internal/domain/product"
)

// fixedClock for deterministic UpdatedAt.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeProductRepo serves a canned list or error.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []productdom.ProductAR
	err      error

	gotStyle     string
	gotTypeValue string
	calls        int
}

func (f *fakeProductRepo) LoadBy(ctx context.Context, style, typeValue string) ([]productdom.ProductAR, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotStyle = style
	f.gotTypeValue = typeValue
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]productdom.ProductAR, len(f.products))
	copy(out, f.products)
	return out, nil
}

// fakeFavoritesRepo keeps per-user sets in memory and re-emits the full set
// to every live listener after each write, like the remote store does.
type fakeFavoritesRepo struct {
	mu        sync.Mutex
	sets      map[string]favdom.IDSet
	listeners map[string][]chan favdom.IDSet

	addErr    error
	removeErr error

	adds    []string // productIds written
	removes []string
}

func newFakeFavoritesRepo() *fakeFavoritesRepo {
	return &fakeFavoritesRepo{
		sets:      map[string]favdom.IDSet{},
		listeners: map[string][]chan favdom.IDSet{},
	}
}

func (f *fakeFavoritesRepo) ListenIDs(ctx context.Context, userID string) (<-chan favdom.IDSet, error) {
	ch := make(chan favdom.IDSet, 16)

	f.mu.Lock()
	f.listeners[userID] = append(f.listeners[userID], ch)
	ch <- f.sets[userID].Clone()
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		live := f.listeners[userID][:0]
		for _, c := range f.listeners[userID] {
			if c != ch {
				live = append(live, c)
			}
		}
		f.listeners[userID] = live
		close(ch)
		f.mu.Unlock()
	}()
	return ch, nil
}

func (f *fakeFavoritesRepo) AddFavorito(ctx context.Context, userID string, p productdom.ProductAR) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	set := f.sets[userID]
	if set == nil {
		set = favdom.IDSet{}
		f.sets[userID] = set
	}
	set[p.ID] = struct{}{}
	f.adds = append(f.adds, p.ID)
	f.broadcastLocked(userID)
	return nil
}

func (f *fakeFavoritesRepo) RemoveFavorito(ctx context.Context, userID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.sets[userID], productID)
	f.removes = append(f.removes, productID)
	f.broadcastLocked(userID)
	return nil
}

// seed installs a set without notifying (pre-existing remote state).
func (f *fakeFavoritesRepo) seed(userID string, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets[userID] = favdom.NewIDSet(ids...)
}

// mutate writes directly and broadcasts (another device changed favorites).
func (f *fakeFavoritesRepo) mutate(userID string, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets[userID] = favdom.NewIDSet(ids...)
	f.broadcastLocked(userID)
}

func (f *fakeFavoritesRepo) writes() (adds, removes []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.adds...), append([]string(nil), f.removes...)
}

func (f *fakeFavoritesRepo) broadcastLocked(userID string) {
	for _, ch := range f.listeners[userID] {
		select {
		case ch <- f.sets[userID].Clone():
		default:
		}
	}
}

// mutableIdentity lets a test swap the signed-in user between entries.
type mutableIdentity struct {
	mu  sync.Mutex
	uid string
}

func (m *mutableIdentity) CurrentUserID() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.uid == "" {
		return "", false
	}
	return m.uid, true
}

func (m *mutableIdentity) set(uid string) {
	m.mu.Lock()
	m.uid = uid
	m.mu.Unlock()
}

// recordingNavigator captures emitted navigation intents.
type recordingNavigator struct {
	mu     sync.Mutex
	opened []assetroute.RouteID
	homes  int
	backs  int
	profs  int
}

func (n *recordingNavigator) OpenVisualization(route assetroute.RouteID) {
	n.mu.Lock()
	n.opened = append(n.opened, route)
	n.mu.Unlock()
}

func (n *recordingNavigator) GoHome() {
	n.mu.Lock()
	n.homes++
	n.mu.Unlock()
}

func (n *recordingNavigator) GoProfile() {
	n.mu.Lock()
	n.profs++
	n.mu.Unlock()
}

func (n *recordingNavigator) GoBack() {
	n.mu.Lock()
	n.backs++
	n.mu.Unlock()
}

func (n *recordingNavigator) openedRoutes() []assetroute.RouteID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]assetroute.RouteID(nil), n.opened...)
}

func sampleProducts(n int) []productdom.ProductAR {
	names := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}
	out := make([]productdom.ProductAR, 0, n)
	for i := 0; i < n && i < len(names); i++ {
		out = append(out, productdom.ProductAR{
			ID:        names[i],
			Style:     "moderno",
			TypeValue: "jarron",
		})
	}
	return out
}
