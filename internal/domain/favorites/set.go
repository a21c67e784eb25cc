// internal/domain/favorites/set.go
package favorites

// IDSet is the set of product ids a user has marked favorite, per the remote
// source of truth. Each subscription emission fully replaces the previous set;
// the core never mutates a set it observed.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids (empty strings are dropped).
func NewIDSet(ids ...string) IDSet {
	s := IDSet{}
	for _, id := range ids {
		if id == "" {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy (safe to hand to another goroutine).
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// IDs returns the members as a slice (unordered).
func (s IDSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}
