package api

import "net/http"

// StandingsHandler serves the championship table.
type StandingsHandler struct {
	deps Dependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps Dependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// HandleStandingsTable handles GET /standings, returning the formatted
// fixed-width table. Rendering also refreshes the flat export, same as
// printing the table interactively.
func (h *StandingsHandler) HandleStandingsTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.deps.RenderStandings(r.Context(), w); err != nil {
		writeError(w, http.StatusInternalServerError, "render standings")
		return
	}
}

// HandleStandingsJSON handles GET /standings.json.
func (h *StandingsHandler) HandleStandingsJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Standings(r.Context()))
}
