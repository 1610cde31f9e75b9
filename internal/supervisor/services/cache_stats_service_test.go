// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/recommend"
)

type countingPublisher struct {
	calls atomic.Int32
}

func (p *countingPublisher) PublishCacheMetrics() recommend.CacheStats {
	p.calls.Add(1)
	return recommend.CacheStats{SearchEntries: 1, ApproximateMemoryBytes: 2048}
}

var (
	_ suture.Service = (*CacheStatsService)(nil)
	_ CachePublisher = (*recommend.Engine)(nil)
)

func TestNewCacheStatsService_DefaultInterval(t *testing.T) {
	t.Parallel()

	for _, interval := range []time.Duration{0, -time.Second} {
		svc := NewCacheStatsService(&countingPublisher{}, interval, zerolog.Nop())
		if svc.interval != DefaultStatsInterval {
			t.Errorf("interval(%v) = %v, want %v", interval, svc.interval, DefaultStatsInterval)
		}
	}
	if got := NewCacheStatsService(&countingPublisher{}, time.Minute, zerolog.Nop()).String(); got != "cache-stats-service" {
		t.Errorf("String() = %q", got)
	}
}

func TestCacheStatsService_PublishesOnStartAndTick(t *testing.T) {
	t.Parallel()

	pub := &countingPublisher{}
	svc := NewCacheStatsService(pub, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && pub.calls.Load() < 3 {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if got := pub.calls.Load(); got < 3 {
		t.Errorf("publish calls = %d, want at least 3", got)
	}
}

func TestCacheStatsService_WithEngine(t *testing.T) {
	t.Parallel()

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog.NewStaticClient(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	svc := NewCacheStatsService(engine, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}
