// Package fixtures generates deterministic CSV seasons for demos and
// tests: a team file plus empty, partial, and full championship
// variants.
package fixtures

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/placarhq/placar/pkg/logger"
)

// Generation defaults.
const (
	defaultSeed  = 42
	maxGoals     = 5
	fixtureMode  = 0o644
	teamsFile    = "times.csv"
	emptyFile    = "partidas_vazio.csv"
	partialFile  = "partidas_parcial.csv"
	completeFile = "partidas.csv"
)

// defaultTeamNames are the historical pun squads.
var defaultTeamNames = []string{
	"JAVAlis",
	"ESCorpiões",
	"SemCTRL",
	"GOrilas",
	"PYthons",
	"SeQueLas",
	"NETunos",
	"LOOPardos",
	"RUSTicos",
	"REACTivos",
}

var (
	teamHeader  = []string{"ID", "Time"}
	matchHeader = []string{"ID", "Time1ID", "Time2ID", "GolsTime1", "GolsTime2"}
)

// Generator writes fixture files into a directory.
type Generator struct {
	dir   string
	names []string
	rng   *rand.Rand
	log   logger.Logger
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(g *Generator) {
		if dir != "" {
			g.dir = dir
		}
	}
}

// WithSeed sets the random seed; generation is deterministic per seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible fixtures
	}
}

// WithTeamNames replaces the default squad list.
func WithTeamNames(names []string) Option {
	return func(g *Generator) {
		if len(names) > 0 {
			g.names = names
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Generator with the historical defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		dir:   ".",
		names: defaultTeamNames,
		rng:   rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible fixtures
		log:   logger.Get(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type result struct {
	home, away, homeGoals, awayGoals int
}

// Generate writes the team file and the three championship variants:
// empty (header only), partial (first half of the shuffled round-robin),
// and complete. Returns the written paths.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	if err := g.writeTeams(); err != nil {
		return nil, err
	}

	// Full double round-robin: every ordered pair plays once.
	var results []result
	for i := range g.names {
		for j := range g.names {
			if i == j {
				continue
			}
			results = append(results, result{
				home:      i,
				away:      j,
				homeGoals: g.rng.Intn(maxGoals + 1),
				awayGoals: g.rng.Intn(maxGoals + 1),
			})
		}
	}
	g.rng.Shuffle(len(results), func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})

	if err := g.writeMatches(emptyFile, nil); err != nil {
		return nil, err
	}
	if err := g.writeMatches(partialFile, results[:len(results)/2]); err != nil {
		return nil, err
	}
	if err := g.writeMatches(completeFile, results); err != nil {
		return nil, err
	}

	paths := []string{
		filepath.Join(g.dir, teamsFile),
		filepath.Join(g.dir, emptyFile),
		filepath.Join(g.dir, partialFile),
		filepath.Join(g.dir, completeFile),
	}
	g.log.Info(ctx, "fixtures generated",
		logger.String("dir", g.dir),
		logger.Int("teams", len(g.names)),
		logger.Int("matches", len(results)),
	)
	return paths, nil
}

func (g *Generator) writeTeams() error {
	records := [][]string{teamHeader}
	for id, name := range g.names {
		records = append(records, []string{strconv.Itoa(id), name})
	}
	return g.writeCSV(teamsFile, records)
}

func (g *Generator) writeMatches(name string, results []result) error {
	records := [][]string{matchHeader}
	for id, r := range results {
		records = append(records, []string{
			strconv.Itoa(id),
			strconv.Itoa(r.home),
			strconv.Itoa(r.away),
			strconv.Itoa(r.homeGoals),
			strconv.Itoa(r.awayGoals),
		})
	}
	return g.writeCSV(name, records)
}

func (g *Generator) writeCSV(name string, records [][]string) error {
	path := filepath.Join(g.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fixtureMode)
	if err != nil {
		return fmt.Errorf("create fixture %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close fixture %s: %w", path, err)
	}
	return nil
}
