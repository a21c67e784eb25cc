package raHandler

import (
	"context"
	"sync"

	"decoraia/internal/domain/assetroute"
	favdom "decoraia/internal/domain/favorites"
	productdom "decoraia/internal/domain/product"
)

// fakeProductRepo backs a CatalogUsecase with canned data.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []productdom.ProductAR
	err      error
}

func (f *fakeProductRepo) LoadBy(_ context.Context, style, typeValue string) ([]productdom.ProductAR, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]productdom.ProductAR, len(f.products))
	copy(out, f.products)
	return out, nil
}

// fakeFavoritesRepo implements favorites.Repository for handler tests.
// Emissions are driven by seed/mutate; each listener gets the current set
// immediately and every replacement afterwards.
type fakeFavoritesRepo struct {
	mu        sync.Mutex
	sets      map[string]favdom.IDSet
	listeners map[string][]chan favdom.IDSet
	adds      []string
	removes   []string
	addErr    error
	removeErr error
	listenErr error
}

func newFakeFavoritesRepo() *fakeFavoritesRepo {
	return &fakeFavoritesRepo{
		sets:      map[string]favdom.IDSet{},
		listeners: map[string][]chan favdom.IDSet{},
	}
}

func (f *fakeFavoritesRepo) seed(uid string, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets[uid] = favdom.NewIDSet(ids...)
}

func (f *fakeFavoritesRepo) mutate(uid string, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets[uid] = favdom.NewIDSet(ids...)
	for _, ch := range f.listeners[uid] {
		select {
		case ch <- f.sets[uid].Clone():
		default:
		}
	}
}

func (f *fakeFavoritesRepo) ListenIDs(ctx context.Context, userID string) (<-chan favdom.IDSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listenErr != nil {
		return nil, f.listenErr
	}
	ch := make(chan favdom.IDSet, 16)
	ch <- f.sets[userID].Clone()
	f.listeners[userID] = append(f.listeners[userID], ch)
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		live := f.listeners[userID][:0]
		for _, c := range f.listeners[userID] {
			if c != ch {
				live = append(live, c)
			}
		}
		f.listeners[userID] = live
		close(ch)
	}()
	return ch, nil
}

func (f *fakeFavoritesRepo) AddFavorito(_ context.Context, userID string, p productdom.ProductAR) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.adds = append(f.adds, p.ID)
	set := f.sets[userID].Clone()
	set[p.ID] = struct{}{}
	f.sets[userID] = set
	return nil
}

func (f *fakeFavoritesRepo) RemoveFavorito(_ context.Context, userID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removes = append(f.removes, productID)
	set := f.sets[userID].Clone()
	delete(set, productID)
	f.sets[userID] = set
	return nil
}

// fakeModelStore resolves routes from an in-memory map.
type fakeModelStore struct {
	assets map[assetroute.RouteID]assetroute.ModelAsset
}

func (f *fakeModelStore) Resolve(_ context.Context, route assetroute.RouteID) (assetroute.ModelAsset, error) {
	a, ok := f.assets[route]
	if !ok {
		return assetroute.ModelAsset{}, assetroute.ErrAssetNotFound
	}
	return a, nil
}

func sampleProducts(n int) []productdom.ProductAR {
	out := make([]productdom.ProductAR, 0, n)
	names := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}
	for i := 0; i < n && i < len(names); i++ {
		out = append(out, productdom.ProductAR{
			ID:        names[i],
			Style:     "moderno",
			TypeValue: "jarron",
		})
	}
	return out
}
