// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	categorydom "decoraia/internal/domain/category"
	productdom "decoraia/internal/domain/product"
)

// MaxRenderSlots is how many products a category screen can show. Exactly
// four fixed render slots exist downstream, so the catalog truncates here
// and the repository port stays generic.
const MaxRenderSlots = 4

// CatalogUsecase resolves categories and loads the bounded product subset
// for one (style, category) selection.
type CatalogUsecase struct {
	repo productdom.Repository
}

func NewCatalogUsecase(repo productdom.Repository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

// ResolveCategory maps categoryId to a registry entry. Unknown ids resolve
// to the default category; this never fails.
func (uc *CatalogUsecase) ResolveCategory(categoryID string) categorydom.Category {
	return categorydom.Resolve(categoryID)
}

// LoadProducts fetches products for (style, typeValue) and truncates to
// MaxRenderSlots preserving the source order. Repository failures come back
// as *CatalogLoadError; no retry here (retry policy is a caller decision).
func (uc *CatalogUsecase) LoadProducts(ctx context.Context, style, typeValue string) ([]productdom.ProductAR, error) {
	if uc == nil || uc.repo == nil {
		return nil, ErrCatalogInvalidArgument
	}

	st := strings.TrimSpace(style)
	tv := strings.TrimSpace(typeValue)
	if st == "" || tv == "" {
		return nil, ErrCatalogInvalidArgument
	}

	all, err := uc.repo.LoadBy(ctx, st, tv)
	if err != nil {
		log.Printf("[catalog_usecase] LoadBy failed style=%q typeValue=%q err=%v", st, tv, err)
		return nil, &CatalogLoadError{Cause: err}
	}

	if len(all) > MaxRenderSlots {
		all = all[:MaxRenderSlots]
	}
	out := make([]productdom.ProductAR, len(all))
	copy(out, all)
	return out, nil
}
