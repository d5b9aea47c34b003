// Package standings folds match results into team statistics and derives
// the championship table from them.
package standings

import (
	"context"
	"sort"

	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/placarhq/placar/pkg/metrics"
)

// TeamLookup resolves a team id to its mutable record. Implemented by the
// team registry.
type TeamLookup interface {
	FindByID(id int) (*model.Team, error)
}

// Report summarizes one aggregation pass.
type Report struct {
	// Applied counts matches whose result reached both teams.
	Applied int
	// Skipped counts matches dropped for referencing an unknown team.
	Skipped int
}

// Option applies a configuration option to the aggregation pass.
type Option func(*aggregator)

// WithLogger sets the logger used for dangling-reference warnings.
func WithLogger(log logger.Logger) Option {
	return func(a *aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

type aggregator struct {
	log logger.Logger
}

// Apply folds every match, in load order, into the statistics of both
// participating teams: the home side sees (home goals, away goals), the
// away side the mirror image. A match referencing an unknown team id is
// warned about and skipped without touching any statistics; the pass
// always runs to the end.
//
// Statistics are zeroed at load time, not here. Running Apply twice over
// the same load double-counts.
func Apply(ctx context.Context, matches []model.Match, teams TeamLookup, opts ...Option) Report {
	a := &aggregator{log: logger.Get()}
	for _, opt := range opts {
		opt(a)
	}

	var rep Report
	for _, m := range matches {
		home, homeErr := teams.FindByID(m.HomeID)
		away, awayErr := teams.FindByID(m.AwayID)
		if homeErr != nil || awayErr != nil {
			a.log.Warn(ctx, "match references unknown team; skipping",
				logger.Int("match_id", m.ID),
				logger.Int("home_id", m.HomeID),
				logger.Int("away_id", m.AwayID),
			)
			metrics.RecordDanglingReference()
			rep.Skipped++
			continue
		}
		home.Accumulate(m.HomeGoals, m.AwayGoals)
		away.Accumulate(m.AwayGoals, m.HomeGoals)
		rep.Applied++
	}
	return rep
}

// Entries converts teams to table rows in the order given, deriving
// points and goal difference on the way.
func Entries(teams []*model.Team) []types.StandingsEntry {
	entries := make([]types.StandingsEntry, 0, len(teams))
	for _, t := range teams {
		entries = append(entries, types.StandingsEntry{
			TeamID:         t.ID,
			Name:           t.Name,
			Wins:           t.Wins,
			Draws:          t.Draws,
			Losses:         t.Losses,
			GoalsFor:       t.GoalsFor,
			GoalsAgainst:   t.GoalsAgainst,
			GoalDifference: t.GoalDifference(),
			Points:         t.Points(),
		})
	}
	return entries
}

// Table derives the championship table from the given teams, ordered by
// ascending team id. The sort is explicit so arbitrary ids render
// correctly; there is no assumption about the id range.
func Table(teams []*model.Team) []types.StandingsEntry {
	entries := Entries(teams)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TeamID < entries[j].TeamID
	})
	return entries
}
