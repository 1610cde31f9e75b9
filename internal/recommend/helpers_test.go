// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/formcoach/internal/catalog"
)

// fakeCatalog is an in-memory catalog.Client with per-query and per-id
// failure injection.
type fakeCatalog struct {
	mu         sync.Mutex
	results    map[string][]string
	defaultIDs []string
	videos     map[string]catalog.Video
	searchErr  map[string]error
	detailErr  map[string]error
	failAll    error
	delay      map[string]time.Duration

	searchCalls atomic.Int64
	detailCalls atomic.Int64
}

func newFakeCatalog(videos ...catalog.Video) *fakeCatalog {
	f := &fakeCatalog{
		results:   make(map[string][]string),
		videos:    make(map[string]catalog.Video),
		searchErr: make(map[string]error),
		detailErr: make(map[string]error),
		delay:     make(map[string]time.Duration),
	}
	for _, v := range videos {
		f.videos[v.ID] = v
		f.defaultIDs = append(f.defaultIDs, v.ID)
	}
	return f
}

func (f *fakeCatalog) wait(ctx context.Context, key string) error {
	f.mu.Lock()
	d := f.delay[key]
	f.mu.Unlock()
	if d == 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeCatalog) Search(ctx context.Context, query string, _ catalog.SearchFilters) ([]string, error) {
	f.searchCalls.Add(1)
	if err := f.wait(ctx, query); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll != nil {
		return nil, f.failAll
	}
	if err := f.searchErr[query]; err != nil {
		return nil, err
	}
	if ids, ok := f.results[query]; ok {
		return append([]string(nil), ids...), nil
	}
	return append([]string(nil), f.defaultIDs...), nil
}

func (f *fakeCatalog) GetDetails(ctx context.Context, id string) (*catalog.Video, error) {
	f.detailCalls.Add(1)
	if err := f.wait(ctx, "detail:"+id); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll != nil {
		return nil, f.failAll
	}
	if err := f.detailErr[id]; err != nil {
		return nil, err
	}
	v, ok := f.videos[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &v, nil
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// workedExampleVideo and workedExampleContext reproduce the reference
// scenario that scores 105.
func workedExampleVideo() catalog.Video {
	return catalog.Video{
		ID:              "vid-worked",
		Title:           "Beginner Strength Training Form Tutorial",
		Duration:        "PT10M",
		DurationMinutes: 10,
		ViewCount:       200000,
		LikeCount:       5000,
		ChannelTitle:    "Garage Gym Weekly",
		Language:        "en",
		ContentRating:   catalog.RatingUnspecified,
	}
}

func workedExampleContext() *Context {
	return &Context{
		Category:      CategoryStrength,
		SkillLevel:    SkillBeginner,
		SessionLength: SessionMedium,
		Preferences: Preferences{
			Language:           "en",
			MaxDurationMinutes: 45,
			MinViewCount:       1000,
		},
		ViewerAge: 16,
	}
}

// plainVideo returns a video that scores a small positive amount from
// popularity only.
func plainVideo(id string, views int64) catalog.Video {
	return catalog.Video{
		ID:              id,
		Title:           "Session " + id,
		DurationMinutes: 20,
		ViewCount:       views,
		ContentRating:   "ytAgeRestricted",
	}
}
