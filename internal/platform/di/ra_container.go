// internal/platform/di/ra_container.go
package di

import (
	"log"
	"net/http"

	"decoraia/internal/adapters/in/http/middleware"
	ra "decoraia/internal/adapters/in/http/ra"
	raHandler "decoraia/internal/adapters/in/http/ra/handler"
	outfs "decoraia/internal/adapters/out/firestore"
	outgcs "decoraia/internal/adapters/out/gcs"
	usecase "decoraia/internal/application/usecase"
	"decoraia/internal/platform/di/shared"
)

// RAContainer holds the buyer-facing AR catalog wiring.
type RAContainer struct {
	Infra *shared.Infra

	ProductRepo   *outfs.ProductRepositoryFS
	FavoritesRepo *outfs.FavoritesRepositoryFS
	ModelStore    *outgcs.ModelAssetStoreGCS

	Catalog   *usecase.CatalogUsecase
	Favorites *usecase.FavoritesSynchronizer
}

// NewRAContainer wires repositories and usecases on top of shared infra.
func NewRAContainer(inf *shared.Infra) *RAContainer {
	c := &RAContainer{Infra: inf}

	c.ProductRepo = outfs.NewProductRepositoryFS(inf.Firestore, inf.ProductsCollection)
	c.FavoritesRepo = outfs.NewFavoritesRepositoryFS(inf.Firestore, inf.UsersCollection, inf.FavoritesSubcol)
	if inf.ModelsBucket != "" {
		c.ModelStore = outgcs.NewModelAssetStoreGCS(inf.GCS, inf.ModelsBucket, inf.ModelsPrefix)
	}

	c.Catalog = usecase.NewCatalogUsecase(c.ProductRepo)
	c.Favorites = usecase.NewFavoritesSynchronizer(c.FavoritesRepo)

	return c
}

// Handler builds the full /ra HTTP surface:
// recover → CORS → (per-route auth) → router.
func (c *RAContainer) Handler() http.Handler {
	optAuth := &middleware.OptionalAuthMiddleware{FirebaseAuth: c.Infra.FirebaseAuth}
	reqAuth := &middleware.UserAuthMiddleware{FirebaseAuth: c.Infra.FirebaseAuth}

	if c.Infra.FirebaseAuth == nil {
		log.Printf("[di.ra] WARN: firebase auth unavailable; favorites endpoints will answer 503")
	}

	var visualization http.Handler
	if c.ModelStore != nil {
		visualization = raHandler.NewVisualizationHandler(c.ModelStore)
	}

	deps := ra.Deps{
		Categories:    raHandler.NewCategoriesHandler(),
		Models:        optAuth.Handler(raHandler.NewModelsHandler(c.Catalog, c.FavoritesRepo)),
		Favorites:     reqAuth.Handler(raHandler.NewFavoritesHandler(c.Favorites, c.FavoritesRepo)),
		Visualization: visualization,
	}

	mux := http.NewServeMux()
	ra.Register(mux, deps)

	return middleware.Recover(middleware.CORS(mux))
}
