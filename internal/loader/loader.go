// Package loader reads the team and match CSV sources into the
// registries.
//
// Loading is forgiving per record and strict per file: a malformed line
// is logged and skipped, while an unreadable or empty file fails the
// whole call. The caller decides how severe that is; the team source is
// fatal at startup, the match source degrades to an empty season.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/placarhq/placar/internal/adapters/repository"
	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/placarhq/placar/pkg/metrics"
	"github.com/placarhq/placar/pkg/textutil"
)

// Field counts for the two source formats.
const (
	teamFieldCount  = 2
	matchFieldCount = 5
)

// Metric source labels.
const (
	sourceTeams   = "teams"
	sourceMatches = "matches"
)

// Option applies a configuration option to a load call.
type Option func(*config)

// WithLogger sets the logger used for per-record diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

type config struct {
	log logger.Logger
}

func newConfig(opts ...Option) *config {
	c := &config{log: logger.Get()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// parseInt32 is the strict integer contract: digits only (optional
// sign), rejecting anything that would not fit a signed 32-bit value.
func parseInt32(s string) (int, error) {
	v, err := strconv.ParseInt(textutil.Trim(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// open prepares a CSV reader over path and consumes the header line.
// Missing file or missing header both fail the load.
func open(path string) (*os.File, *csv.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open source %s: %w", path, err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if _, err := r.Read(); err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}
	return f, r, nil
}

// Teams loads the team source into reg. Records are `id, name`; a record
// with a non-integer id or a missing name is logged and skipped.
// Statistics start zeroed. Returns the number of teams loaded.
func Teams(ctx context.Context, path string, reg *repository.TeamRegistry, opts ...Option) (int, error) {
	c := newConfig(opts...)

	f, r, err := open(path)
	if err != nil {
		c.log.Error(ctx, "team source unavailable", logger.String("path", path), logger.Error(err))
		return 0, err
	}
	defer func() { _ = f.Close() }()

	count := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.log.Warn(ctx, "team line ignored", logger.String("path", path), logger.Error(err))
			metrics.RecordParseError(sourceTeams)
			continue
		}

		team, ok := parseTeam(rec)
		if !ok {
			c.log.Warn(ctx, "team record ignored", logger.String("path", path), logger.Any("record", rec))
			metrics.RecordParseError(sourceTeams)
			continue
		}
		if err := reg.Insert(team); err != nil {
			c.log.Warn(ctx, "team registry full; dropping remaining records",
				logger.String("path", path), logger.Int("capacity", reg.Capacity()))
			metrics.RecordCapacityDrop(sourceTeams)
			break
		}
		count++
	}

	metrics.RecordTeamsLoaded(count)
	return count, nil
}

func parseTeam(rec []string) (model.Team, bool) {
	if len(rec) < teamFieldCount {
		return model.Team{}, false
	}
	id, err := parseInt32(rec[0])
	if err != nil {
		return model.Team{}, false
	}
	name := textutil.Trim(rec[1])
	if name == "" {
		return model.Team{}, false
	}
	t := model.Team{ID: id, Name: name}
	t.Stats.Zero()
	return t, true
}

// Matches loads the match source into reg. Records are five strict
// integers; anything else is logged and skipped. Returns the number of
// matches loaded.
func Matches(ctx context.Context, path string, reg *repository.MatchRegistry, opts ...Option) (int, error) {
	c := newConfig(opts...)

	f, r, err := open(path)
	if err != nil {
		c.log.Error(ctx, "match source unavailable", logger.String("path", path), logger.Error(err))
		return 0, err
	}
	defer func() { _ = f.Close() }()

	count := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.log.Warn(ctx, "match line ignored", logger.String("path", path), logger.Error(err))
			metrics.RecordParseError(sourceMatches)
			continue
		}

		match, ok := parseMatch(rec)
		if !ok {
			c.log.Warn(ctx, "match record ignored", logger.String("path", path), logger.Any("record", rec))
			metrics.RecordParseError(sourceMatches)
			continue
		}
		if err := reg.Insert(match); err != nil {
			c.log.Warn(ctx, "match registry full; dropping remaining records",
				logger.String("path", path), logger.Int("capacity", reg.Capacity()))
			metrics.RecordCapacityDrop(sourceMatches)
			break
		}
		count++
	}

	metrics.RecordMatchesLoaded(count)
	return count, nil
}

func parseMatch(rec []string) (model.Match, bool) {
	if len(rec) != matchFieldCount {
		return model.Match{}, false
	}
	vals := make([]int, matchFieldCount)
	for i, field := range rec {
		v, err := parseInt32(field)
		if err != nil {
			return model.Match{}, false
		}
		vals[i] = v
	}
	return model.Match{
		ID:        vals[0],
		HomeID:    vals[1],
		AwayID:    vals[2],
		HomeGoals: vals[3],
		AwayGoals: vals[4],
	}, true
}
