// internal/application/usecase/favorites_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	favdom "decoraia/internal/domain/favorites"
	productdom "decoraia/internal/domain/product"
)

// FavoritesSynchronizer keeps a live favorites set for the current user.
//
// Discipline:
//   - at most one active subscription; Subscribe cancels the prior one so two
//     emission streams never race into the same view state
//   - each emission fully replaces the previous set
//   - Add/Remove report failures but never touch the observed set; the
//     subscription is the single source of truth
type FavoritesSynchronizer struct {
	repo favdom.Repository

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

func NewFavoritesSynchronizer(repo favdom.Repository) *FavoritesSynchronizer {
	return &FavoritesSynchronizer{repo: repo}
}

// Subscribe opens a live subscription for userID and forwards every emission
// to onSet until ctx is canceled or a newer Subscribe replaces this one.
// Empty userID returns ErrAuthRequired instead of emitting an empty set.
//
// Delivery is serialized with subscription switches: once a newer Subscribe
// has taken over, no emission from this subscription reaches onSet.
func (s *FavoritesSynchronizer) Subscribe(ctx context.Context, userID string, onSet func(favdom.IDSet)) error {
	if s == nil || s.repo == nil {
		return ErrFavoritesInvalidArgument
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return ErrAuthRequired
	}
	if onSet == nil {
		return ErrFavoritesInvalidArgument
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	subCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	ch, err := s.repo.ListenIDs(subCtx, uid)
	if err != nil {
		cancel()
		return err
	}

	go func() {
		defer cancel()
		for set := range ch {
			s.mu.Lock()
			if s.gen != gen {
				s.mu.Unlock()
				return
			}
			onSet(set)
			s.mu.Unlock()
		}
	}()
	return nil
}

// Unsubscribe cancels the active subscription, if any.
func (s *FavoritesSynchronizer) Unsubscribe() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.mu.Unlock()
}

// Add stores p as a favorite of userID. Failures come back as
// *FavoriteWriteError; the caller decides whether to surface or absorb them.
func (s *FavoritesSynchronizer) Add(ctx context.Context, userID string, p productdom.ProductAR) error {
	if s == nil || s.repo == nil {
		return ErrFavoritesInvalidArgument
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return ErrAuthRequired
	}
	if strings.TrimSpace(p.ID) == "" {
		return ErrFavoritesInvalidArgument
	}

	if err := s.repo.AddFavorito(ctx, uid, p); err != nil {
		log.Printf("[favorites_usecase] add failed uid=%q productId=%q err=%v", uid, p.ID, err)
		return &FavoriteWriteError{Op: "add", Cause: err}
	}
	return nil
}

// Remove drops productID from userID's favorites.
func (s *FavoritesSynchronizer) Remove(ctx context.Context, userID, productID string) error {
	if s == nil || s.repo == nil {
		return ErrFavoritesInvalidArgument
	}
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" {
		return ErrAuthRequired
	}
	if pid == "" {
		return ErrFavoritesInvalidArgument
	}

	if err := s.repo.RemoveFavorito(ctx, uid, pid); err != nil {
		log.Printf("[favorites_usecase] remove failed uid=%q productId=%q err=%v", uid, pid, err)
		return &FavoriteWriteError{Op: "remove", Cause: err}
	}
	return nil
}
