package api

import (
	"net/http"

	"github.com/placarhq/placar/internal/domain/standings"
	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/pkg/textutil"
)

// TeamsHandler serves prefix searches over the team registry.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// teamsResponse reports the shown teams and the full match count, so
// clients can tell when results were truncated.
type teamsResponse struct {
	Teams []types.StandingsEntry `json:"teams"`
	Total int                    `json:"total"`
}

// HandleGetTeams handles GET /teams?prefix=...
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	prefix := textutil.Trim(r.URL.Query().Get("prefix"))
	if prefix == "" {
		writeError(w, http.StatusBadRequest, "prefix must not be empty")
		return
	}

	found, total := h.deps.SearchTeams(r.Context(), prefix)
	writeJSON(w, http.StatusOK, teamsResponse{Teams: standings.Entries(found), Total: total})
}
