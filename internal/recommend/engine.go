// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/formcoach/internal/cache"
	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/logging"
	"github.com/tomtom215/formcoach/internal/metrics"
	"github.com/tomtom215/formcoach/internal/validation"
)

// ErrInvalidContext is returned when a recommendation context fails validation.
var ErrInvalidContext = errors.New("invalid recommendation context")

// Engine produces contextual video recommendations from a catalog.
// Each Engine owns its cache; construct one per catalog and share it
// between callers. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	client catalog.Client
	scorer *Scorer
	cache  *TwoTierCache

	// Metrics
	requestCount   atomic.Int64
	invalidCount   atomic.Int64
	partialCount   atomic.Int64
	degradedCount  atomic.Int64
	searchCalls    atomic.Int64
	detailCalls    atomic.Int64
	callFailures   atomic.Int64
	totalLatencyMS atomic.Int64
	lastLatencyMS  atomic.Int64
}

// Option customizes an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	clock  cache.Clock
	scorer *Scorer
}

// WithClock sets the clock used for cache expiry.
func WithClock(clock cache.Clock) Option {
	return func(o *engineOptions) { o.clock = clock }
}

// WithScorer replaces the default rule table.
func WithScorer(s *Scorer) Option {
	return func(o *engineOptions) { o.scorer = s }
}

// NewEngine creates a recommendation engine over client.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, client catalog.Client, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if client == nil {
		return nil, errors.New("catalog client is required")
	}

	o := engineOptions{scorer: defaultScorer}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		client: client,
		scorer: o.scorer,
		cache:  NewTwoTierCache(cfg.Cache, o.clock),
	}, nil
}

// GetContextualRecommendations returns up to Limits.MaxResults ranked
// videos for rc. Catalog failures never fail the request: they are
// reported in Response.Summary and the ranking uses whatever candidates
// were fetched. The only error is ErrInvalidContext.
func (e *Engine) GetContextualRecommendations(ctx context.Context, rc *Context) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
	}

	if rc == nil {
		rc = &Context{}
	}
	if verr := validation.ValidateStruct(rc); verr != nil {
		e.invalidCount.Add(1)
		metrics.RecordRecommendation(metrics.OutcomeInvalid, time.Since(start), 0, 0, 0)
		return nil, fmt.Errorf("%w: %w", ErrInvalidContext, verr)
	}

	logger := e.logger.With().
		Str("request_id", requestID).
		Str("category", rc.Category.String()).
		Str("skill_level", rc.SkillLevel.String()).
		Logger()

	queries := GenerateQueries(rc, e.config.Limits.MaxQueries)
	logger.Debug().Strs("queries", queries).Msg("generated catalog queries")

	fanCtx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	fetched := e.fetchCandidates(fanCtx, rc, queries, logger)
	cancel()

	candidates := Deduplicate(fetched.videos)
	items := e.scorer.Rank(candidates, rc, e.config.Limits.MaxResults)

	summary := Summary{
		RequestID:          requestID,
		Queries:            queries,
		QueriesIssued:      len(queries),
		SearchFailures:     fetched.searchFailures,
		DetailFailures:     fetched.detailFailures,
		Candidates:         len(candidates),
		Failures:           fetched.failures,
		CatalogUnavailable: fetched.catalogUnavailable(),
		LatencyMS:          time.Since(start).Milliseconds(),
		Timestamp:          time.Now(),
	}

	outcome := e.recordOutcome(&summary)
	metrics.RecordRecommendation(outcome, time.Since(start), len(queries), len(candidates), len(items))

	event := logger.Debug()
	if outcome != metrics.OutcomeSuccess {
		event = logger.Warn()
	}
	event.
		Str("outcome", outcome).
		Int("candidates", len(candidates)).
		Int("returned", len(items)).
		Int("search_failures", summary.SearchFailures).
		Int("detail_failures", summary.DetailFailures).
		Int64("latency_ms", summary.LatencyMS).
		Msg("recommendation complete")

	return &Response{Items: items, Summary: summary}, nil
}

// recordOutcome classifies a summary and updates engine counters.
func (e *Engine) recordOutcome(s *Summary) string {
	e.totalLatencyMS.Add(s.LatencyMS)
	e.lastLatencyMS.Store(s.LatencyMS)

	switch {
	case s.CatalogUnavailable:
		e.degradedCount.Add(1)
		return metrics.OutcomeDegraded
	case s.Partial():
		e.partialCount.Add(1)
		return metrics.OutcomePartial
	default:
		return metrics.OutcomeSuccess
	}
}

// PreviewQueries validates rc and returns the queries and filters a
// recommendation request would issue, without calling the catalog.
func (e *Engine) PreviewQueries(rc *Context) ([]string, catalog.SearchFilters, error) {
	if verr := validation.ValidateStruct(rc); verr != nil {
		return nil, catalog.SearchFilters{}, fmt.Errorf("%w: %w", ErrInvalidContext, verr)
	}
	return GenerateQueries(rc, e.config.Limits.MaxQueries), SearchFilters(rc, e.config.Limits.SearchResults), nil
}

// ClearCache empties both cache tiers.
func (e *Engine) ClearCache() {
	before := e.cache.Stats()
	e.cache.Clear()
	e.logger.Info().
		Int("search_entries", before.SearchEntries).
		Int("detail_entries", before.DetailEntries).
		Msg("cache cleared")
}

// GetCacheStats returns the two-tier cache state.
func (e *Engine) GetCacheStats() CacheStats {
	return e.cache.Stats()
}

// PublishCacheMetrics pushes cache gauges to Prometheus and returns the
// stats that were published.
func (e *Engine) PublishCacheMetrics() CacheStats {
	return e.cache.PublishMetrics()
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	stats := e.cache.Stats()
	requests := e.requestCount.Load()
	completed := requests - e.invalidCount.Load()

	var avg float64
	if completed > 0 {
		avg = float64(e.totalLatencyMS.Load()) / float64(completed)
	}

	return Metrics{
		RequestCount:        requests,
		InvalidRequests:     e.invalidCount.Load(),
		PartialResponses:    e.partialCount.Load(),
		DegradedResponses:   e.degradedCount.Load(),
		SearchCalls:         e.searchCalls.Load(),
		DetailCalls:         e.detailCalls.Load(),
		CallFailures:        e.callFailures.Load(),
		AverageLatencyMS:    avg,
		CacheHits:           stats.Hits,
		CacheMisses:         stats.Misses,
		LastRequestDuration: e.lastLatencyMS.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
