// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package services

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/tomtom215/formcoach/internal/metrics"
	"github.com/tomtom215/formcoach/internal/recommend"
)

// DefaultStatsInterval is used when no publish interval is configured.
const DefaultStatsInterval = 30 * time.Second

// CachePublisher publishes cache statistics to Prometheus.
// *recommend.Engine implements it.
type CachePublisher interface {
	PublishCacheMetrics() recommend.CacheStats
}

// CacheStatsService periodically publishes recommendation cache gauges
// (entries, evictions, approximate memory) and the process uptime gauge so
// they stay current between requests.
type CacheStatsService struct {
	publisher CachePublisher
	interval  time.Duration
	started   time.Time
	logger    zerolog.Logger
	name      string
}

// NewCacheStatsService creates a new cache statistics service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheStatsService(publisher CachePublisher, interval time.Duration, logger zerolog.Logger) *CacheStatsService {
	if interval <= 0 {
		interval = DefaultStatsInterval
	}
	return &CacheStatsService{
		publisher: publisher,
		interval:  interval,
		started:   time.Now(),
		logger:    logger.With().Str("service", "cache-stats").Logger(),
		name:      "cache-stats-service",
	}
}

// Serve implements suture.Service. It publishes once on start and then on
// every tick until the context is canceled.
func (s *CacheStatsService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache stats service starting")
	s.publish()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publish()
		}
	}
}

func (s *CacheStatsService) publish() {
	stats := s.publisher.PublishCacheMetrics()
	metrics.UpdateUptime(s.started)
	s.logger.Debug().
		Int("search_entries", stats.SearchEntries).
		Int("detail_entries", stats.DetailEntries).
		Int64("evictions", stats.Evictions).
		Str("memory", humanize.IBytes(uint64(stats.ApproximateMemoryBytes))).
		Msg("published cache stats")
}

// String identifies the service in supervisor logs.
func (s *CacheStatsService) String() string {
	return s.name
}
