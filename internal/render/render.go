// Package render produces the fixed-width championship table, on screen
// and as the flat exported report.
//
// Column alignment is visual: cell widths are measured in UTF-8 code
// points so accented team names line up with their ASCII neighbours.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/placarhq/placar/pkg/metrics"
	"github.com/placarhq/placar/pkg/textutil"
)

// DefaultExportPath is where the flat report lands unless configured
// otherwise, relative to the working directory.
const DefaultExportPath = "classificacao.txt"

// Default visual column widths, in code points.
const (
	widthID     = 3
	widthName   = 12
	widthResult = 2
	widthGoals  = 3
)

const exportFileMode = 0o644

// Widths holds the visual width of every table column.
type Widths struct {
	ID           int
	Name         int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Difference   int
	Points       int
}

// DefaultWidths returns the standard column layout.
func DefaultWidths() Widths {
	return Widths{
		ID:           widthID,
		Name:         widthName,
		Wins:         widthResult,
		Draws:        widthResult,
		Losses:       widthResult,
		GoalsFor:     widthGoals,
		GoalsAgainst: widthGoals,
		Difference:   widthGoals,
		Points:       widthGoals,
	}
}

func (w Widths) ordered() []int {
	return []int{w.ID, w.Name, w.Wins, w.Draws, w.Losses, w.GoalsFor, w.GoalsAgainst, w.Difference, w.Points}
}

// headers in table column order.
var headers = []string{"ID", "Time", "V", "E", "D", "GM", "GS", "S", "PG"}

// Renderer writes standings tables. Safe to reuse across renders.
type Renderer struct {
	widths     Widths
	exportPath string
	log        logger.Logger
}

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithNameWidth overrides the team-name column width.
func WithNameWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.widths.Name = n
		}
	}
}

// WithWidths replaces the whole column layout.
func WithWidths(w Widths) Option {
	return func(r *Renderer) {
		r.widths = w
	}
}

// WithExportPath sets where the flat report is written.
func WithExportPath(path string) Option {
	return func(r *Renderer) {
		if path != "" {
			r.exportPath = path
		}
	}
}

// WithLogger sets the logger used for export diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Renderer with the default layout.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		widths:     DefaultWidths(),
		exportPath: DefaultExportPath,
		log:        logger.Get(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WriteTable writes the header, the dash separator, and one row per
// entry to w. Entries are rendered in the order given; callers sort.
func (r *Renderer) WriteTable(w io.Writer, entries []types.StandingsEntry) error {
	if err := r.writeRow(w, headers); err != nil {
		return err
	}
	if err := r.writeSeparator(w); err != nil {
		return err
	}
	for _, e := range entries {
		if err := r.writeRow(w, cells(e)); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the table to w and then exports the same table to the
// configured path. Export is best-effort: a failure is logged and
// reported through metrics but never undoes the on-screen output.
func (r *Renderer) Render(ctx context.Context, w io.Writer, entries []types.StandingsEntry) error {
	if err := r.WriteTable(w, entries); err != nil {
		return err
	}
	if err := r.Export(entries); err != nil {
		r.log.Warn(ctx, "standings export failed",
			logger.String("path", r.exportPath),
			logger.Error(err),
		)
		metrics.RecordExportError()
		return nil
	}
	metrics.RecordExport()
	return nil
}

// Export overwrites the flat report at the configured path with the
// current table.
func (r *Renderer) Export(entries []types.StandingsEntry) error {
	var b strings.Builder
	if err := r.WriteTable(&b, entries); err != nil {
		return err
	}
	if err := os.WriteFile(r.exportPath, []byte(b.String()), exportFileMode); err != nil {
		return fmt.Errorf("write standings export: %w", err)
	}
	return nil
}

// ExportPath returns the configured report location.
func (r *Renderer) ExportPath() string {
	return r.exportPath
}

func cells(e types.StandingsEntry) []string {
	return []string{
		strconv.Itoa(e.TeamID),
		e.Name,
		strconv.Itoa(e.Wins),
		strconv.Itoa(e.Draws),
		strconv.Itoa(e.Losses),
		strconv.Itoa(e.GoalsFor),
		strconv.Itoa(e.GoalsAgainst),
		strconv.Itoa(e.GoalDifference),
		strconv.Itoa(e.Points),
	}
}

func (r *Renderer) writeRow(w io.Writer, values []string) error {
	widths := r.widths.ordered()
	var b strings.Builder
	for i, v := range values {
		b.WriteString("| ")
		b.WriteString(textutil.Pad(v, widths[i]))
		b.WriteString(" ")
	}
	b.WriteString("|\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeSeparator(w io.Writer) error {
	var b strings.Builder
	for _, width := range r.widths.ordered() {
		b.WriteString("|-")
		b.WriteString(strings.Repeat("-", width))
		b.WriteString("-")
	}
	b.WriteString("|\n")
	_, err := io.WriteString(w, b.String())
	return err
}
