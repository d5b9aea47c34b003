// Package service bundles loading, aggregation, querying, and rendering
// behind one facade consumed by the CLI menu and the HTTP read API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/placarhq/placar/internal/adapters/repository"
	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/internal/domain/standings"
	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/internal/loader"
	"github.com/placarhq/placar/internal/query"
	"github.com/placarhq/placar/internal/render"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/placarhq/placar/pkg/metrics"
)

// ErrNoTeams is returned when the team source yields zero usable records.
var ErrNoTeams = errors.New("no teams loaded")

// Default source locations, relative to the working directory.
const (
	defaultTeamsPath   = "times.csv"
	defaultMatchesPath = "partidas.csv"
)

const defaultMaxSearchResults = 64

// Service implements the standings pipeline. Load once, then query and
// render freely; the pipeline is synchronous and single-threaded.
type Service struct {
	teams   *repository.TeamRegistry
	matches *repository.MatchRegistry

	renderer *render.Renderer

	teamsPath        string
	matchesPath      string
	maxSearchResults int

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTeamsPath sets the team CSV source.
func WithTeamsPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.teamsPath = path
		}
	}
}

// WithMatchesPath sets the match CSV source.
func WithMatchesPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.matchesPath = path
		}
	}
}

// WithTeamRegistry replaces the default team registry.
func WithTeamRegistry(reg *repository.TeamRegistry) Option {
	return func(s *Service) {
		if reg != nil {
			s.teams = reg
		}
	}
}

// WithMatchRegistry replaces the default match registry.
func WithMatchRegistry(reg *repository.MatchRegistry) Option {
	return func(s *Service) {
		if reg != nil {
			s.matches = reg
		}
	}
}

// WithRenderer replaces the default standings renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithMaxSearchResults caps how many prefix-search hits are returned.
func WithMaxSearchResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSearchResults = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		teamsPath:        defaultTeamsPath,
		matchesPath:      defaultMatchesPath,
		maxSearchResults: defaultMaxSearchResults,
		log:              logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.teams == nil {
		s.teams = repository.NewTeamRegistry()
	}
	if s.matches == nil {
		s.matches = repository.NewMatchRegistry()
	}
	if s.renderer == nil {
		s.renderer = render.New(render.WithLogger(s.log))
	}
	return s
}

// Load reads both sources and runs the aggregation pass. A failed or
// empty team source is an error; a failed match source degrades to an
// empty season with all-zero statistics.
func (s *Service) Load(ctx context.Context) error {
	teamCount, err := loader.Teams(ctx, s.teamsPath, s.teams, loader.WithLogger(s.log))
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	if teamCount == 0 {
		return fmt.Errorf("%w: %s", ErrNoTeams, s.teamsPath)
	}

	matchCount, err := loader.Matches(ctx, s.matchesPath, s.matches, loader.WithLogger(s.log))
	if err != nil {
		s.log.Warn(ctx, "match source unavailable; continuing with empty season",
			logger.String("path", s.matchesPath), logger.Error(err))
	}

	start := time.Now()
	rep := standings.Apply(ctx, s.matches.Matches(), s.teams, standings.WithLogger(s.log))
	metrics.ObserveAggregationDuration(float64(time.Since(start).Microseconds()) / 1000.0)

	s.log.Info(ctx, "season loaded",
		logger.Int("teams", teamCount),
		logger.Int("matches", matchCount),
		logger.Int("applied", rep.Applied),
		logger.Int("skipped", rep.Skipped),
	)
	return nil
}

// Standings returns the championship table ordered by ascending team id.
func (s *Service) Standings(ctx context.Context) []types.StandingsEntry {
	return standings.Table(s.teams.Teams())
}

// RenderStandings writes the table to w and refreshes the flat export.
func (s *Service) RenderStandings(ctx context.Context, w io.Writer) error {
	return s.renderer.Render(ctx, w, s.Standings(ctx))
}

// ExportPath reports where the flat standings report is written.
func (s *Service) ExportPath() string {
	return s.renderer.ExportPath()
}

// SearchTeams returns up to the configured number of teams whose name
// matches prefix, plus the total number of matches in the registry.
func (s *Service) SearchTeams(ctx context.Context, prefix string) ([]*model.Team, int) {
	return s.teams.FindByPrefix(prefix, s.maxSearchResults)
}

// WriteTeams writes the standings-format table for an arbitrary set of
// teams, in the order given.
func (s *Service) WriteTeams(ctx context.Context, w io.Writer, teams []*model.Team) error {
	return s.renderer.WriteTable(w, standings.Entries(teams))
}

// WriteMatches emits the filtered match listing for the given mode.
func (s *Service) WriteMatches(ctx context.Context, w io.Writer, prefix string, mode query.Mode) (int, error) {
	return query.Write(w, s.matches.Matches(), s.teams, prefix, mode)
}

// MatchRows returns the filtered match listing as formatted rows.
func (s *Service) MatchRows(ctx context.Context, prefix string, mode query.Mode) []string {
	return query.Rows(s.matches.Matches(), s.teams, prefix, mode)
}

// TeamCount reports how many teams are registered.
func (s *Service) TeamCount() int {
	return s.teams.Len()
}

// MatchCount reports how many matches are registered.
func (s *Service) MatchCount() int {
	return s.matches.Len()
}
