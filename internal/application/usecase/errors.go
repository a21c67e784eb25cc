// internal/application/usecase/errors.go
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is returned when a favorites operation is attempted
	// without a signed-in user. Callers must distinguish "no user" from
	// "user has zero favorites"; an empty set is never emitted silently.
	ErrAuthRequired = errors.New("favorites_usecase: auth required")

	ErrCatalogInvalidArgument   = errors.New("catalog_usecase: invalid argument")
	ErrFavoritesInvalidArgument = errors.New("favorites_usecase: invalid argument")
)

// AuthRequiredMessage is the user-facing guidance shown when favorites are
// used signed-out. Kept verbatim from the app copy.
const AuthRequiredMessage = "Debes iniciar sesión para gestionar favoritos."

// CatalogLoadError reports a failed remote product fetch. Recoverable and
// session-scoped: the session surfaces the message and clears its items.
type CatalogLoadError struct {
	Cause error
}

func (e *CatalogLoadError) Error() string {
	if e == nil || e.Cause == nil {
		return "catalog_usecase: load failed"
	}
	return fmt.Sprintf("catalog_usecase: load failed: %v", e.Cause)
}

func (e *CatalogLoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Message is what the session exposes to the presentation layer.
func (e *CatalogLoadError) Message() string {
	if e == nil || e.Cause == nil {
		return "load failed"
	}
	return e.Cause.Error()
}

// FavoriteWriteError reports a failed favorite add/remove. Absorbed at the
// session boundary: the subscription remains authoritative, so a failed
// toggle is corrected by the next emission, not by local mutation.
type FavoriteWriteError struct {
	Op    string // "add" or "remove"
	Cause error
}

func (e *FavoriteWriteError) Error() string {
	if e == nil {
		return "favorites_usecase: write failed"
	}
	return fmt.Sprintf("favorites_usecase: %s failed: %v", e.Op, e.Cause)
}

func (e *FavoriteWriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
