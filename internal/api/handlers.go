// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package api

import (
	"context"
	"time"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/recommend"
)

// RecommendationService is the engine surface the HTTP layer depends on.
// *recommend.Engine implements it.
type RecommendationService interface {
	GetContextualRecommendations(ctx context.Context, rc *recommend.Context) (*recommend.Response, error)
	PreviewQueries(rc *recommend.Context) ([]string, catalog.SearchFilters, error)
	GetCacheStats() recommend.CacheStats
	ClearCache()
	GetMetrics() recommend.Metrics
}

// CatalogStatus reports the catalog circuit breaker state
// ("closed", "half-open" or "open").
type CatalogStatus interface {
	State() string
}

// Handler manages all HTTP request handlers.
type Handler struct {
	service   RecommendationService
	catalog   CatalogStatus
	startTime time.Time
}

// NewHandler creates a new Handler instance. status may be nil when the
// catalog client is not wrapped by a circuit breaker.
func NewHandler(service RecommendationService, status CatalogStatus) *Handler {
	return &Handler{
		service:   service,
		catalog:   status,
		startTime: time.Now(),
	}
}
