// internal/domain/product/repository_port.go
package product

import "context"

// Repository is the read port for the remote product catalog.
//
// Storage recommendation (Firestore):
// - collection: productosRA
// - fields: id, style, typeValue, displayName, thumbnailUrl
//
// LoadBy returns every matching product in the source's stable order; callers
// decide how many of them they can actually show. The port stays generic on
// purpose (truncation is a catalog concern, not a storage concern).
type Repository interface {
	LoadBy(ctx context.Context, style, typeValue string) ([]ProductAR, error)
}
