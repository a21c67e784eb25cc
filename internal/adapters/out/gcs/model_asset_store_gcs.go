// internal/adapters/out/gcs/model_asset_store_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"

	"decoraia/internal/domain/assetroute"
)

// DefaultModelsPrefix is the object prefix holding the .glb models.
const DefaultModelsPrefix = "modelos"

// ModelAssetStoreGCS implements assetroute.Store backed by Google Cloud Storage.
//
// Object layout:
// - gs://<bucket>/<prefix>/<route>.glb
// - one object per route, names match the route ids exactly
type ModelAssetStoreGCS struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

// NewModelAssetStoreGCS creates a new GCS-based model asset store.
// bucket が空の場合はそのまま保持し、利用時にエラーとします。
func NewModelAssetStoreGCS(client *storage.Client, bucket, prefix string) *ModelAssetStoreGCS {
	p := strings.Trim(strings.TrimSpace(prefix), "/")
	if p == "" {
		p = DefaultModelsPrefix
	}
	return &ModelAssetStoreGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
		Prefix: p,
	}
}

// Resolve maps a route to its .glb object and returns the public URL.
// Unknown routes and missing objects both come back as ErrAssetNotFound
// so callers answer 404 without peeking at storage internals.
func (s *ModelAssetStoreGCS) Resolve(ctx context.Context, route assetroute.RouteID) (assetroute.ModelAsset, error) {
	if s == nil || s.Client == nil {
		return assetroute.ModelAsset{}, errors.New("ModelAssetStoreGCS: nil storage client")
	}
	bucketName := strings.TrimSpace(s.Bucket)
	if bucketName == "" {
		return assetroute.ModelAsset{}, errors.New("ModelAssetStoreGCS: bucket is empty")
	}

	if !assetroute.IsKnown(route) {
		return assetroute.ModelAsset{}, assetroute.ErrAssetNotFound
	}

	objName := s.objectPath(route)
	attrs, err := s.Client.Bucket(bucketName).Object(objName).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return assetroute.ModelAsset{}, assetroute.ErrAssetNotFound
		}
		return assetroute.ModelAsset{}, err
	}

	contentType := strings.TrimSpace(attrs.ContentType)
	if contentType == "" {
		contentType = "model/gltf-binary"
	}

	return assetroute.ModelAsset{
		Route:       route,
		ObjectPath:  objName,
		URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objName),
		ContentType: contentType,
		Size:        attrs.Size,
	}, nil
}

func (s *ModelAssetStoreGCS) objectPath(route assetroute.RouteID) string {
	return s.Prefix + "/" + string(route) + ".glb"
}
