package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	favdom "decoraia/internal/domain/favorites"
	productdom "decoraia/internal/domain/product"
)

// setCollector records every emission delivered to a subscription.
type setCollector struct {
	mu   sync.Mutex
	sets []favdom.IDSet
}

func (c *setCollector) onSet(set favdom.IDSet) {
	c.mu.Lock()
	c.sets = append(c.sets, set)
	c.mu.Unlock()
}

func (c *setCollector) latest() (favdom.IDSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sets) == 0 {
		return nil, false
	}
	return c.sets[len(c.sets)-1], true
}

func (c *setCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sets)
}

func TestFavoritesSynchronizer_SubscribeRequiresUser(t *testing.T) {
	s := NewFavoritesSynchronizer(newFakeFavoritesRepo())

	err := s.Subscribe(context.Background(), "", func(favdom.IDSet) {})
	require.ErrorIs(t, err, ErrAuthRequired)

	err = s.Subscribe(context.Background(), "   ", func(favdom.IDSet) {})
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestFavoritesSynchronizer_ForwardsEmissions(t *testing.T) {
	repo := newFakeFavoritesRepo()
	repo.seed("user-1", "p1", "p2")
	s := NewFavoritesSynchronizer(repo)
	col := &setCollector{}

	require.NoError(t, s.Subscribe(context.Background(), "user-1", col.onSet))
	defer s.Unsubscribe()

	require.Eventually(t, func() bool {
		set, ok := col.latest()
		return ok && set.Has("p1") && set.Has("p2")
	}, time.Second, 5*time.Millisecond, "initial snapshot should arrive")

	repo.mutate("user-1", "p1")
	require.Eventually(t, func() bool {
		set, _ := col.latest()
		return set != nil && set.Has("p1") && !set.Has("p2")
	}, time.Second, 5*time.Millisecond, "replacement set should arrive")
}

func TestFavoritesSynchronizer_ResubscribeCancelsPrior(t *testing.T) {
	repo := newFakeFavoritesRepo()
	repo.seed("alice", "a1")
	repo.seed("bob", "b1")
	s := NewFavoritesSynchronizer(repo)

	aliceCol := &setCollector{}
	require.NoError(t, s.Subscribe(context.Background(), "alice", aliceCol.onSet))
	require.Eventually(t, func() bool { return aliceCol.count() >= 1 }, time.Second, 5*time.Millisecond)

	bobCol := &setCollector{}
	require.NoError(t, s.Subscribe(context.Background(), "bob", bobCol.onSet))
	seenAtSwitch := aliceCol.count()

	// Alice's remote set keeps changing, but her canceled subscription must
	// not deliver past the switch point.
	repo.mutate("alice", "a1", "a2")
	repo.mutate("alice", "a1", "a2", "a3")

	require.Eventually(t, func() bool {
		set, ok := bobCol.latest()
		return ok && set.Has("b1")
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, seenAtSwitch, aliceCol.count(), "no emission from the old subscription after the switch")
}

func TestFavoritesSynchronizer_ContextCancelStopsDelivery(t *testing.T) {
	repo := newFakeFavoritesRepo()
	repo.seed("user-1", "p1")
	s := NewFavoritesSynchronizer(repo)
	col := &setCollector{}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Subscribe(ctx, "user-1", col.onSet))
	require.Eventually(t, func() bool { return col.count() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	// Give the forwarder a moment to drain, then verify silence.
	time.Sleep(20 * time.Millisecond)
	seen := col.count()
	repo.mutate("user-1", "p1", "p2")
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, seen, col.count())
}

func TestFavoritesSynchronizer_Writes(t *testing.T) {
	t.Run("add and remove hit the repository", func(t *testing.T) {
		repo := newFakeFavoritesRepo()
		s := NewFavoritesSynchronizer(repo)

		p := productdom.ProductAR{ID: "p9", Style: "moderno", TypeValue: "jarron"}
		require.NoError(t, s.Add(context.Background(), "user-1", p))
		require.NoError(t, s.Remove(context.Background(), "user-1", "p9"))

		adds, removes := repo.writes()
		require.Equal(t, []string{"p9"}, adds)
		require.Equal(t, []string{"p9"}, removes)
	})

	t.Run("failures come back typed", func(t *testing.T) {
		repo := newFakeFavoritesRepo()
		repo.addErr = errors.New("permission denied")
		repo.removeErr = errors.New("deadline exceeded")
		s := NewFavoritesSynchronizer(repo)

		err := s.Add(context.Background(), "user-1", productdom.ProductAR{ID: "p1"})
		var fwe *FavoriteWriteError
		require.ErrorAs(t, err, &fwe)
		require.Equal(t, "add", fwe.Op)

		err = s.Remove(context.Background(), "user-1", "p1")
		require.ErrorAs(t, err, &fwe)
		require.Equal(t, "remove", fwe.Op)
	})

	t.Run("missing user is auth required", func(t *testing.T) {
		s := NewFavoritesSynchronizer(newFakeFavoritesRepo())

		err := s.Add(context.Background(), "", productdom.ProductAR{ID: "p1"})
		require.ErrorIs(t, err, ErrAuthRequired)

		err = s.Remove(context.Background(), "", "p1")
		require.ErrorIs(t, err, ErrAuthRequired)
	})
}
