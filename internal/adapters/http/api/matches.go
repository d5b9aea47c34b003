package api

import (
	"net/http"

	"github.com/placarhq/placar/internal/query"
	"github.com/placarhq/placar/pkg/textutil"
)

// MatchesHandler serves prefix-filtered match listings.
type MatchesHandler struct {
	deps Dependencies
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps Dependencies) *MatchesHandler {
	return &MatchesHandler{deps: deps}
}

func parseMode(s string) (query.Mode, bool) {
	switch s {
	case "", "home":
		return query.ModeHome, true
	case "away":
		return query.ModeAway, true
	case "either":
		return query.ModeEither, true
	default:
		return 0, false
	}
}

// HandleGetMatches handles GET /matches?mode=home|away|either&prefix=...
// The response is the same text listing the interactive menu prints.
func (h *MatchesHandler) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	mode, ok := parseMode(r.URL.Query().Get("mode"))
	if !ok {
		writeError(w, http.StatusBadRequest, "mode must be home, away, or either")
		return
	}
	prefix := textutil.Trim(r.URL.Query().Get("prefix"))
	if prefix == "" {
		writeError(w, http.StatusBadRequest, "prefix must not be empty")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := h.deps.WriteMatches(r.Context(), w, prefix, mode); err != nil {
		writeError(w, http.StatusInternalServerError, "list matches")
		return
	}
}
