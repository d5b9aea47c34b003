package repository

import "github.com/placarhq/placar/internal/domain/model"

// MatchRegistry is an insertion-ordered, capacity-bounded collection of
// matches. No index beyond the load order; the query engine scans.
type MatchRegistry struct {
	matches  []model.Match
	capacity int
}

// MatchOption applies a configuration option to the MatchRegistry.
type MatchOption func(*MatchRegistry)

// WithMatchCapacity sets the maximum number of matches the registry accepts.
func WithMatchCapacity(n int) MatchOption {
	return func(r *MatchRegistry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// NewMatchRegistry creates an empty match registry.
func NewMatchRegistry(opts ...MatchOption) *MatchRegistry {
	r := &MatchRegistry{capacity: defaultMatchCapacity}
	for _, opt := range opts {
		opt(r)
	}
	r.matches = make([]model.Match, 0, r.capacity)
	return r
}

// Insert appends a match in load order. Returns ErrCapacityExceeded once
// the bound is reached. Match ids carry no uniqueness constraint.
func (r *MatchRegistry) Insert(m model.Match) error {
	if len(r.matches) >= r.capacity {
		return ErrCapacityExceeded
	}
	r.matches = append(r.matches, m)
	return nil
}

// Matches returns the loaded matches in insertion order.
func (r *MatchRegistry) Matches() []model.Match {
	out := make([]model.Match, len(r.matches))
	copy(out, r.matches)
	return out
}

// Len returns the number of loaded matches.
func (r *MatchRegistry) Len() int {
	return len(r.matches)
}

// Capacity returns the configured upper bound.
func (r *MatchRegistry) Capacity() int {
	return r.capacity
}
