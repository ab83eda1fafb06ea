// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/outfitter/internal/domain/outfit"
	"github.com/okian/outfitter/internal/domain/season"
	"github.com/okian/outfitter/internal/domain/types"
	"github.com/okian/outfitter/pkg/logger"
	"github.com/okian/outfitter/pkg/metrics"
)

// Service runs the outfit engine for independent requests. It keeps no
// per-request state, so it is safe for concurrent use.
type Service struct {
	// Configuration
	hemisphere       season.Hemisphere
	now              func() time.Time
	budget           int
	defaultCount     int
	maxCount         int
	batchConcurrency int
	maxBatchSize     int
	seed             uint64

	// Counters
	requests    atomic.Int64
	suggestions atomic.Int64
	empty       atomic.Int64
	batches     atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHemisphere sets the hemisphere used to resolve the current season.
func WithHemisphere(h season.Hemisphere) Option {
	return func(s *Service) {
		s.hemisphere = h
	}
}

// WithClock sets the clock used to resolve the current season.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCombinationBudget caps base combinations per run.
func WithCombinationBudget(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.budget = n
		}
	}
}

// WithDefaultCount sets the count used when a request omits one.
func WithDefaultCount(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.defaultCount = n
		}
	}
}

// WithMaxCount caps the count a request may ask for.
func WithMaxCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxCount = n
		}
	}
}

// WithBatchConcurrency bounds parallel runs inside one batch.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// WithMaxBatchSize caps requests per batch.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// WithSeed makes every run deterministic unless the request has its own seed.
// Zero keeps entropy seeding.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		hemisphere:       season.Northern,
		now:              time.Now,
		budget:           outfit.DefaultCombinationBudget,
		defaultCount:     outfit.DefaultCount,
		maxCount:         100,
		batchConcurrency: runtime.NumCPU(),
		maxBatchSize:     20,
		logger:           logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Suggest runs the engine for one request.
func (s *Service) Suggest(ctx context.Context, req types.SuggestRequest) (types.SuggestResponse, error) {
	if err := ctx.Err(); err != nil {
		return types.SuggestResponse{}, fmt.Errorf("suggest: %w", err)
	}
	count := s.defaultCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 0 || count > s.maxCount {
		return types.SuggestResponse{}, fmt.Errorf("%w: count must be between 0 and %d, got %d", ErrInvalidRequest, s.maxCount, count)
	}

	current := s.CurrentSeason(ctx)
	engine := outfit.New(
		outfit.WithRandom(s.random(req.Seed)),
		outfit.WithCurrentSeason(current),
		outfit.WithCombinationBudget(s.budget),
	)

	start := time.Now()
	res := engine.Run(req.Wardrobe, req.Preferences, count)
	elapsed := time.Since(start)

	top := 0
	if len(res.Suggestions) > 0 {
		top = res.Suggestions[0].Score
	}
	metrics.RecordRun(res.Candidates, len(res.Suggestions), top, res.BudgetExhausted, elapsed)
	s.requests.Add(1)
	s.suggestions.Add(int64(len(res.Suggestions)))
	if len(res.Suggestions) == 0 {
		s.empty.Add(1)
	}

	s.logger.Debug(ctx, "generated outfit suggestions",
		logger.Int("wardrobe", len(req.Wardrobe)),
		logger.String("occasion", req.Preferences.Occasion),
		logger.String("season", req.Preferences.Season),
		logger.Int("candidates", res.Candidates),
		logger.Int("returned", len(res.Suggestions)),
		logger.Bool("budgetExhausted", res.BudgetExhausted),
	)
	if res.BudgetExhausted {
		s.logger.Info(ctx, "combination budget exhausted",
			logger.Int("budget", s.budget),
			logger.Int("wardrobe", len(req.Wardrobe)),
		)
	}

	return types.SuggestResponse{
		Suggestions:   res.Suggestions,
		CurrentSeason: current.Lower(),
	}, nil
}

// SuggestBatch runs independent requests with bounded concurrency. Results
// keep request order. The first failure cancels the rest.
func (s *Service) SuggestBatch(ctx context.Context, reqs []types.SuggestRequest) ([]types.SuggestResponse, error) {
	if len(reqs) == 0 || len(reqs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: batch must hold 1 to %d requests, got %d", ErrInvalidRequest, s.maxBatchSize, len(reqs))
	}
	metrics.RecordBatchSize(len(reqs))
	s.batches.Add(1)

	results := make([]types.SuggestResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i := range reqs {
		g.Go(func() error {
			resp, err := s.Suggest(gctx, reqs[i])
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn(ctx, "batch failed", logger.Int("size", len(reqs)), logger.Error(err))
		return nil, err
	}
	return results, nil
}

// CurrentSeason returns today's season for the configured hemisphere.
func (s *Service) CurrentSeason(_ context.Context) season.Season {
	return season.Current(s.now(), s.hemisphere)
}

// CurrentSeasonIn returns today's season for hemisphere h.
func (s *Service) CurrentSeasonIn(_ context.Context, h season.Hemisphere) season.Season {
	return season.Current(s.now(), h)
}

// Hemisphere returns the configured hemisphere.
func (s *Service) Hemisphere() season.Hemisphere { return s.hemisphere }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"requests":          s.requests.Load(),
		"suggestions":       s.suggestions.Load(),
		"emptyResults":      s.empty.Load(),
		"batches":           s.batches.Load(),
		"combinationBudget": s.budget,
		"defaultCount":      s.defaultCount,
		"maxCount":          s.maxCount,
		"batchConcurrency":  s.batchConcurrency,
		"hemisphere":        s.hemisphere.String(),
	}
}

func (s *Service) random(reqSeed *uint64) outfit.Random {
	switch {
	case reqSeed != nil:
		return outfit.NewSeededRandom(*reqSeed)
	case s.seed != 0:
		return outfit.NewSeededRandom(s.seed)
	default:
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not for security
	}
}
