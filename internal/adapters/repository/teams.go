// Package repository provides the bounded, insertion-ordered in-memory
// registries backing the standings pipeline.
//
// Both registries mirror the source data shape: an ordered collection with
// an explicit capacity, rejecting inserts past the bound instead of
// growing silently. Lookups are linear scans; the data sets are small
// (tens of teams, hundreds of matches) and the scan keeps first-match
// semantics for duplicate ids observable.
package repository

import (
	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/pkg/textutil"
)

// Default capacity bounds.
const (
	defaultTeamCapacity  = 64
	defaultMatchCapacity = 500
)

// TeamRegistry is an insertion-ordered, capacity-bounded collection of
// teams. Not safe for concurrent use; the pipeline is single-threaded by
// design and read-only once loaded.
type TeamRegistry struct {
	teams    []model.Team
	capacity int
}

// TeamOption applies a configuration option to the TeamRegistry.
type TeamOption func(*TeamRegistry)

// WithTeamCapacity sets the maximum number of teams the registry accepts.
func WithTeamCapacity(n int) TeamOption {
	return func(r *TeamRegistry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// NewTeamRegistry creates an empty team registry.
func NewTeamRegistry(opts ...TeamOption) *TeamRegistry {
	r := &TeamRegistry{capacity: defaultTeamCapacity}
	for _, opt := range opts {
		opt(r)
	}
	r.teams = make([]model.Team, 0, r.capacity)
	return r
}

// Insert appends a team in load order. Returns ErrCapacityExceeded once
// the bound is reached; earlier inserts stay valid.
func (r *TeamRegistry) Insert(t model.Team) error {
	if len(r.teams) >= r.capacity {
		return ErrCapacityExceeded
	}
	r.teams = append(r.teams, t)
	return nil
}

// FindByID returns the first team with the given id, or ErrNotFound.
// Uniqueness of ids is expected but not enforced; under duplicates the
// first loaded record wins.
func (r *TeamRegistry) FindByID(id int) (*model.Team, error) {
	for i := range r.teams {
		if r.teams[i].ID == id {
			return &r.teams[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByPrefix scans teams in insertion order and collects those whose
// name starts with prefix, ASCII-case-insensitively. At most limit teams
// are returned, but the second result always reports the full match
// count so callers can tell when results were cut off. A limit <= 0
// returns no teams, only the count.
func (r *TeamRegistry) FindByPrefix(prefix string, limit int) ([]*model.Team, int) {
	var found []*model.Team
	total := 0
	for i := range r.teams {
		if !textutil.HasPrefixFold(r.teams[i].Name, prefix) {
			continue
		}
		if total < limit {
			found = append(found, &r.teams[i])
		}
		total++
	}
	return found, total
}

// Teams returns the registered teams in insertion order. The pointers
// alias registry storage so aggregation can mutate statistics in place.
func (r *TeamRegistry) Teams() []*model.Team {
	out := make([]*model.Team, len(r.teams))
	for i := range r.teams {
		out[i] = &r.teams[i]
	}
	return out
}

// Len returns the number of registered teams.
func (r *TeamRegistry) Len() int {
	return len(r.teams)
}

// Capacity returns the configured upper bound.
func (r *TeamRegistry) Capacity() int {
	return r.capacity
}

// ZeroStats resets every team's accumulated statistics, readying the
// registry for a fresh aggregation pass.
func (r *TeamRegistry) ZeroStats() {
	for i := range r.teams {
		r.teams[i].Stats.Zero()
	}
}
