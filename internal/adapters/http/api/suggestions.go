package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okian/outfitter/internal/domain/types"
	"github.com/okian/outfitter/pkg/logger"
)

// SuggestionHandler serves outfit suggestion requests.
type SuggestionHandler struct {
	deps     Dependencies
	validate *validator.Validate
	logger   logger.Logger
}

// NewSuggestionHandler creates a new suggestion handler.
func NewSuggestionHandler(deps Dependencies, v *validator.Validate) *SuggestionHandler {
	return &SuggestionHandler{deps: deps, validate: v, logger: logger.Nop()}
}

// HandleSuggest handles POST /outfits/suggestions requests.
func (h *SuggestionHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	const op = "api.suggest"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req types.SuggestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validate.StructCtx(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", WrapKind(op, ErrInvalidRequest, describe(err)))
		return
	}
	resp, err := h.deps.Suggest(r.Context(), req)
	if err != nil {
		h.logger.Warn(r.Context(), "suggest failed", logger.Error(err))
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleBatch handles POST /outfits/suggestions/batch requests.
func (h *SuggestionHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.suggest_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req types.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validate.StructCtx(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", WrapKind(op, ErrInvalidRequest, describe(err)))
		return
	}
	results, err := h.deps.SuggestBatch(r.Context(), req.Requests)
	if err != nil {
		h.logger.Warn(r.Context(), "batch suggest failed", logger.Int("size", len(req.Requests)), logger.Error(err))
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, types.BatchResponse{Results: results})
}

// describe flattens validator output into one readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}
