// internal/domain/assetroute/store_port.go
package assetroute

import (
	"context"
	"errors"
)

// ErrAssetNotFound is returned when a route has no backing model object.
var ErrAssetNotFound = errors.New("assetroute: model asset not found")

// ModelAsset is a resolved, downloadable 3D model for a route.
type ModelAsset struct {
	Route       RouteID `json:"route"`
	ObjectPath  string  `json:"objectPath"`
	URL         string  `json:"url"`
	ContentType string  `json:"contentType,omitempty"`
	Size        int64   `json:"size,omitempty"`
}

// Store resolves a route to its model asset in object storage.
type Store interface {
	Resolve(ctx context.Context, route RouteID) (ModelAsset, error)
}
