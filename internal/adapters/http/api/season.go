package api

import (
	"net/http"

	"github.com/okian/outfitter/internal/domain/season"
	"github.com/okian/outfitter/internal/domain/types"
)

// SeasonHandler reports the season "current" resolves to.
type SeasonHandler struct {
	deps Dependencies
}

// NewSeasonHandler creates a new season handler.
func NewSeasonHandler(deps Dependencies) *SeasonHandler {
	return &SeasonHandler{deps: deps}
}

// HandleCurrent handles GET /seasons/current?hemisphere=north|south requests.
// Without a hemisphere the service default applies.
func (h *SeasonHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	const op = "api.current_season"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	hemi := h.deps.Hemisphere()
	if q := r.URL.Query().Get("hemisphere"); q != "" {
		parsed, err := season.ParseHemisphere(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", WrapKind(op, ErrInvalidRequest, err))
			return
		}
		hemi = parsed
	}
	current := h.deps.CurrentSeasonIn(r.Context(), hemi)
	writeJSON(w, http.StatusOK, types.SeasonResponse{Season: current.Lower(), Hemisphere: hemi.String()})
}
