// internal/adapters/out/firestore/favorites_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	favdom "decoraia/internal/domain/favorites"
	productdom "decoraia/internal/domain/product"
)

// Default collection names for favorites.
const (
	DefaultUsersCollection       = "usuarios"
	DefaultFavoritesSubcol       = "favoritos"
	favoritesListenChannelBuffer = 8
)

// FavoritesRepositoryFS implements favorites.Repository using Firestore.
//
// Collection design:
// - collection: usuarios/{uid}/favoritos
// - docId: productId (membership is existence of the doc)
// - fields: product snapshot + addedAt (for the favorites screen ordering)
type FavoritesRepositoryFS struct {
	Client          *firestore.Client
	UsersCollection string
	FavoritesSubcol string
}

func NewFavoritesRepositoryFS(client *firestore.Client, usersCollection, favoritesSubcol string) *FavoritesRepositoryFS {
	uc := strings.TrimSpace(usersCollection)
	if uc == "" {
		uc = DefaultUsersCollection
	}
	fc := strings.TrimSpace(favoritesSubcol)
	if fc == "" {
		fc = DefaultFavoritesSubcol
	}
	return &FavoritesRepositoryFS{Client: client, UsersCollection: uc, FavoritesSubcol: fc}
}

func (r *FavoritesRepositoryFS) favCol(uid string) *firestore.CollectionRef {
	return r.Client.Collection(r.UsersCollection).Doc(uid).Collection(r.FavoritesSubcol)
}

// ListenIDs opens a snapshot listener on the user's favorites subcollection
// and emits the full id set on every change, starting with the current state.
// The channel closes when ctx is canceled or the stream breaks; each emitted
// set is owned by the receiver.
func (r *FavoritesRepositoryFS) ListenIDs(ctx context.Context, userID string) (<-chan favdom.IDSet, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("favorites_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("favorites_repository_fs: userID is empty")
	}

	snaps := r.favCol(uid).Snapshots(ctx)
	ch := make(chan favdom.IDSet, favoritesListenChannelBuffer)

	go func() {
		defer close(ch)
		defer snaps.Stop()

		for {
			qs, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil && status.Code(err) != codes.Canceled {
					log.Printf("[favorites_repository_fs] listen broken uid=%q err=%v", uid, err)
				}
				return
			}
			if qs == nil {
				continue
			}

			set, err := idSetFromSnapshot(qs)
			if err != nil {
				log.Printf("[favorites_repository_fs] snapshot decode failed uid=%q err=%v", uid, err)
				continue
			}

			select {
			case ch <- set:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// AddFavorito stores the product snapshot under docId=productId.
// Overwrite full doc (simple & predictable; re-adding refreshes the copy).
func (r *FavoritesRepositoryFS) AddFavorito(ctx context.Context, userID string, p productdom.ProductAR) error {
	if r == nil || r.Client == nil {
		return errors.New("favorites_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("favorites_repository_fs: userID is empty")
	}
	pid := strings.TrimSpace(p.ID)
	if pid == "" {
		return errors.New("favorites_repository_fs: product id is empty")
	}

	doc := favoritoDoc{
		Style:        strings.TrimSpace(p.Style),
		TypeValue:    strings.TrimSpace(p.TypeValue),
		DisplayName:  strings.TrimSpace(p.DisplayName),
		ThumbnailURL: strings.TrimSpace(p.ThumbnailURL),
		AddedAt:      time.Now().UTC(),
	}
	_, err := r.favCol(uid).Doc(pid).Set(ctx, doc)
	return err
}

// RemoveFavorito deletes docId=productId. Deleting a doc that is already
// gone is not an error (idempotent remove).
func (r *FavoritesRepositoryFS) RemoveFavorito(ctx context.Context, userID, productID string) error {
	if r == nil || r.Client == nil {
		return errors.New("favorites_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("favorites_repository_fs: userID is empty")
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return errors.New("favorites_repository_fs: productID is empty")
	}

	_, err := r.favCol(uid).Doc(pid).Delete(ctx)
	if err != nil && status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type favoritoDoc struct {
	Style        string    `firestore:"style"`
	TypeValue    string    `firestore:"typeValue"`
	DisplayName  string    `firestore:"displayName"`
	ThumbnailURL string    `firestore:"thumbnailUrl"`
	AddedAt      time.Time `firestore:"addedAt"`
}

func idSetFromSnapshot(qs *firestore.QuerySnapshot) (favdom.IDSet, error) {
	set := favdom.IDSet{}
	docs := qs.Documents
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if doc == nil || doc.Ref == nil {
			continue
		}
		id := strings.TrimSpace(doc.Ref.ID)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set, nil
}
