// Package query filters the match list by team-name prefix and formats
// the qualifying fixtures as table rows.
package query

import (
	"fmt"
	"io"

	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/pkg/metrics"
	"github.com/placarhq/placar/pkg/textutil"
)

// UnknownTeamName stands in for a team id the registry cannot resolve.
// The listing keeps going; one bad reference never fails the whole query.
const UnknownTeamName = "(desconhecido)"

// Header lines emitted before every listing.
const (
	headerLine    = "| ID | Time1 |  | Time2 |"
	separatorLine = "|----|-------|--|-------|"
)

// Mode selects which side of the fixture the prefix applies to.
type Mode int

const (
	// ModeHome filters by the home team's name.
	ModeHome Mode = iota
	// ModeAway filters by the away team's name.
	ModeAway
	// ModeEither matches when either side qualifies.
	ModeEither
)

// String returns the mode's label as used in diagnostics and the
// no-result fallback line.
func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "mandante"
	case ModeAway:
		return "visitante"
	case ModeEither:
		return "mandante ou visitante"
	default:
		return "desconhecido"
	}
}

// TeamResolver resolves team ids to records. Implemented by the team
// registry.
type TeamResolver interface {
	FindByID(id int) (*model.Team, error)
}

func teamName(teams TeamResolver, id int) string {
	t, err := teams.FindByID(id)
	if err != nil {
		return UnknownTeamName
	}
	return t.Name
}

func (m Mode) matches(homeName, awayName, prefix string) bool {
	switch m {
	case ModeHome:
		return textutil.HasPrefixFold(homeName, prefix)
	case ModeAway:
		return textutil.HasPrefixFold(awayName, prefix)
	case ModeEither:
		return textutil.HasPrefixFold(homeName, prefix) || textutil.HasPrefixFold(awayName, prefix)
	default:
		return false
	}
}

// Rows returns one formatted line per qualifying match, in load order.
// Pure: no I/O, no registry mutation.
func Rows(matches []model.Match, teams TeamResolver, prefix string, mode Mode) []string {
	var rows []string
	for _, m := range matches {
		homeName := teamName(teams, m.HomeID)
		awayName := teamName(teams, m.AwayID)
		if !mode.matches(homeName, awayName, prefix) {
			continue
		}
		rows = append(rows, fmt.Sprintf("| %d | %s | %d x %d | %s |",
			m.ID, homeName, m.HomeGoals, m.AwayGoals, awayName))
	}
	return rows
}

// Write emits the two-line header followed by the qualifying rows, or a
// single informational line naming the prefix and mode when nothing
// qualifies. Returns the number of rows written.
func Write(w io.Writer, matches []model.Match, teams TeamResolver, prefix string, mode Mode) (int, error) {
	metrics.RecordQuery(mode.String())
	if _, err := fmt.Fprintln(w, headerLine); err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(w, separatorLine); err != nil {
		return 0, err
	}
	rows := Rows(matches, teams, prefix, mode)
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return 0, err
		}
	}
	if len(rows) == 0 {
		if _, err := fmt.Fprintf(w, "Nenhuma partida encontrada para %s com prefixo: %s\n", mode, prefix); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
