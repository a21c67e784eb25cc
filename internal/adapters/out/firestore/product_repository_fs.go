// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	productdom "decoraia/internal/domain/product"
)

// DefaultProductsCollection is used when no collection name is configured.
const DefaultProductsCollection = "productosRA"

// ProductRepositoryFS implements product.Repository using Firestore.
//
// Collection design:
// - collection: productosRA
// - docId: productId (docId is the source of truth)
// - fields: style, typeValue, displayName, thumbnailUrl
type ProductRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewProductRepositoryFS(client *firestore.Client, collection string) *ProductRepositoryFS {
	col := strings.TrimSpace(collection)
	if col == "" {
		col = DefaultProductsCollection
	}
	return &ProductRepositoryFS{Client: client, Collection: col}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// LoadBy returns all products matching (style, typeValue) in docId order.
// The stable order matters downstream: the catalog truncates to a prefix.
func (r *ProductRepositoryFS) LoadBy(ctx context.Context, style, typeValue string) ([]productdom.ProductAR, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	st := strings.TrimSpace(style)
	tv := strings.TrimSpace(typeValue)
	if st == "" || tv == "" {
		return nil, errors.New("product_repository_fs: style and typeValue are required")
	}

	it := r.col().
		Where("style", "==", st).
		Where("typeValue", "==", tv).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer it.Stop()

	var out []productdom.ProductAR
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if doc == nil || doc.Ref == nil {
			continue
		}

		var d productDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, err
		}
		p := d.toDomain()
		// docId is the source of truth even when the doc carries an id field
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type productDoc struct {
	Style        string `firestore:"style"`
	TypeValue    string `firestore:"typeValue"`
	DisplayName  string `firestore:"displayName"`
	ThumbnailURL string `firestore:"thumbnailUrl"`
}

func (d productDoc) toDomain() productdom.ProductAR {
	return productdom.ProductAR{
		Style:        strings.TrimSpace(d.Style),
		TypeValue:    strings.TrimSpace(d.TypeValue),
		DisplayName:  strings.TrimSpace(d.DisplayName),
		ThumbnailURL: strings.TrimSpace(d.ThumbnailURL),
	}
}
