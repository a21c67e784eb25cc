// internal/domain/favorites/repository_port.go
package favorites

import (
	"context"

	productdom "decoraia/internal/domain/product"
)

// Repository is the persistence port for per-user favorites.
//
// Storage recommendation (Firestore):
// - collection: usuarios/{uid}/favoritos
// - docId: productId (membership is existence of the doc)
// - fields: the favorited product snapshot (for the favorites screen)
type Repository interface {
	// ListenIDs opens a live subscription for userID. The returned channel
	// receives a full replacement IDSet on every remote change, starting with
	// the current state, and is closed when ctx is canceled or the stream
	// breaks. Each emitted set is owned by the receiver.
	ListenIDs(ctx context.Context, userID string) (<-chan IDSet, error)

	// AddFavorito stores product as a favorite of userID.
	AddFavorito(ctx context.Context, userID string, p productdom.ProductAR) error

	// RemoveFavorito removes productID from userID's favorites.
	RemoveFavorito(ctx context.Context, userID, productID string) error
}
