// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	service "github.com/okian/outfitter/internal/app"
	"github.com/okian/outfitter/internal/domain/season"
	"github.com/okian/outfitter/internal/domain/types"
	"github.com/okian/outfitter/pkg/logger"
)

// maxBodyBytes bounds request bodies; wardrobes arrive inline.
const maxBodyBytes = 4 << 20

// Dependencies required by HTTP handlers.
type Dependencies interface {
	Suggest(ctx context.Context, req types.SuggestRequest) (types.SuggestResponse, error)
	SuggestBatch(ctx context.Context, reqs []types.SuggestRequest) ([]types.SuggestResponse, error)
	CurrentSeasonIn(ctx context.Context, h season.Hemisphere) season.Season
	Hemisphere() season.Hemisphere
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	suggestionHandler *SuggestionHandler
	seasonHandler     *SeasonHandler

	limiter *rate.Limiter
	logger  logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit limits suggestion routes to rps requests per second with the
// given burst. rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	v := validator.New(validator.WithRequiredStructEnabled())
	s := &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		suggestionHandler: NewSuggestionHandler(deps, v),
		seasonHandler:     NewSeasonHandler(deps),
		logger:            logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.suggestionHandler.logger = s.logger
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	limited := func(h http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(RateLimitMiddleware(s.limiter, h, endpoint), endpoint))
	}
	plain := func(h http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(h, endpoint))
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", plain(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/seasons/current", plain(s.seasonHandler.HandleCurrent, "season"))
	mux.HandleFunc("/outfits/suggestions", limited(s.suggestionHandler.HandleSuggest, "suggestions"))
	mux.HandleFunc("/outfits/suggestions/batch", limited(s.suggestionHandler.HandleBatch, "suggestions_batch"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service failures onto status codes.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, season.ErrInvalidHemisphere):
		writeError(w, http.StatusBadRequest, "invalid_request", WrapKind(op, ErrInvalidRequest, err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "canceled", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal", WrapKind(op, ErrInternal, err))
	}
}

// decodeJSON reads one JSON document from r into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
