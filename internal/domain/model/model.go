// Package model holds the core domain entities: teams, matches, and the
// per-team statistics derived from match results.
package model

// Stats accumulates a team's results over a season. Derived quantities
// (points, goal difference) are computed on demand and never stored.
type Stats struct {
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Zero resets every accumulated statistic. Loaders call this when a team
// record is created so aggregation always starts from a clean slate.
func (s *Stats) Zero() {
	*s = Stats{}
}

// Accumulate folds a single match result, seen from this team's
// perspective, into the running totals. Goals are added first, then
// exactly one of wins/draws/losses is incremented.
func (s *Stats) Accumulate(goalsFor, goalsAgainst int) {
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		s.Wins++
	case goalsFor == goalsAgainst:
		s.Draws++
	default:
		s.Losses++
	}
}

// Points returns the standings points: three per win, one per draw.
func (s Stats) Points() int {
	return 3*s.Wins + s.Draws
}

// GoalDifference returns goals scored minus goals conceded.
func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Team is a club in the championship. The ID is externally assigned and
// expected (not enforced) to be unique within a registry.
type Team struct {
	ID   int
	Name string
	Stats
}

// Match is one fixture between two teams, referenced by ID. Immutable
// once loaded.
type Match struct {
	ID        int
	HomeID    int
	AwayID    int
	HomeGoals int
	AwayGoals int
}
