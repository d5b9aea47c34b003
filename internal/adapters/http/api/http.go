// Package api declares HTTP contracts and route registration helpers.
//
// The surface is read-only: data is loaded once at startup and the
// handlers only ever derive tables and listings from it.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/internal/query"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Standings returns the table ordered by ascending team id.
	Standings(ctx context.Context) []types.StandingsEntry

	// RenderStandings writes the formatted table and refreshes the export.
	RenderStandings(ctx context.Context, w io.Writer) error

	// SearchTeams returns matching teams plus the full match count.
	SearchTeams(ctx context.Context, prefix string) ([]*model.Team, int)

	// WriteMatches emits the filtered match listing for a mode.
	WriteMatches(ctx context.Context, w io.Writer, prefix string, mode query.Mode) (int, error)

	// TeamCount and MatchCount describe the loaded season.
	TeamCount() int
	MatchCount() int
}

// Server wires HTTP routes for the standings API.
type Server struct {
	standingsHandler *StandingsHandler
	matchesHandler   *MatchesHandler
	teamsHandler     *TeamsHandler
	healthHandler    *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		standingsHandler: NewStandingsHandler(deps),
		matchesHandler:   NewMatchesHandler(deps),
		teamsHandler:     NewTeamsHandler(deps),
		healthHandler:    NewHealthHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/standings", s.wrap(s.standingsHandler.HandleStandingsTable, "standings"))
	mux.HandleFunc("/standings.json", s.wrap(s.standingsHandler.HandleStandingsJSON, "standings_json"))
	mux.HandleFunc("/matches", s.wrap(s.matchesHandler.HandleGetMatches, "matches"))
	mux.HandleFunc("/teams", s.wrap(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/healthz", s.wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
}

func (s *Server) wrap(h http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(h, endpoint))
}

// writeJSON writes v with the given status, falling back to a plain 500
// on encoding failure.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
	}
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
