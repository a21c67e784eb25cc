// internal/domain/identity/provider.go
package identity

// Provider exposes the current authenticated user, or none.
// Synchronously queryable; the HTTP layer adapts the verified Firebase uid
// into this port, tests use a fixed value.
type Provider interface {
	// CurrentUserID returns the signed-in user's id and true, or ("", false)
	// when nobody is signed in.
	CurrentUserID() (string, bool)
}

// Static is a Provider with a fixed answer (one request, one uid).
type Static struct {
	UID string
}

func (s Static) CurrentUserID() (string, bool) {
	if s.UID == "" {
		return "", false
	}
	return s.UID, true
}

// None is a Provider for the signed-out case.
var None Provider = Static{}
