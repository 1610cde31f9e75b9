// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/metrics"
)

// Catalog operations as reported to metrics.
const (
	opSearch  = "search"
	opDetails = "details"
)

// fetchResult is the outcome of the catalog fan-out for one request.
type fetchResult struct {
	// videos holds every fetched result in query order, then catalog order
	// within a query. Ids returned by several queries appear repeatedly.
	videos []catalog.Video

	failures       []CallFailure
	searchFailures int
	detailFailures int

	searches      int
	detailLookups int
}

// catalogUnavailable reports whether the catalog produced nothing usable:
// every search failed, or every detail lookup that was needed failed.
func (r *fetchResult) catalogUnavailable() bool {
	if r.searches > 0 && r.searchFailures == r.searches {
		return true
	}
	return r.detailLookups > 0 && r.detailFailures == r.detailLookups
}

// failureLog collects per-call failures from concurrent workers.
type failureLog struct {
	mu       sync.Mutex
	failures []CallFailure
	search   int
	details  int
}

func (f *failureLog) add(kind, target string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failures = append(f.failures, CallFailure{Kind: kind, Target: target, Error: err.Error()})
	if kind == FailureSearch {
		f.search++
	} else {
		f.details++
	}
}

// fetchCandidates runs every query, then fetches details for each unique
// id, both through a pool bounded by Limits.Concurrency. A failed call is
// logged and recorded; it never aborts the other calls.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) fetchCandidates(ctx context.Context, rc *Context, queries []string, logger zerolog.Logger) fetchResult {
	filters := SearchFilters(rc, e.config.Limits.SearchResults)
	failed := &failureLog{}

	// Phase 1: searches
	results := make([][]string, len(queries))
	runBounded(ctx, len(queries), e.config.Limits.Concurrency, func(i int, err error) {
		query := queries[i]
		var ids []string
		if err == nil {
			ids, err = e.search(ctx, query, rc, filters)
		}
		if err != nil {
			failed.add(FailureSearch, query, err)
			logger.Warn().Err(err).Str("query", query).Msg("catalog search failed")
			return
		}
		results[i] = ids
	})

	// Phase 2: details for unique ids, in first-seen order
	index := make(map[string]int)
	var order []string
	for _, ids := range results {
		for _, id := range ids {
			if _, seen := index[id]; !seen {
				index[id] = len(order)
				order = append(order, id)
			}
		}
	}

	videos := make([]*catalog.Video, len(order))
	runBounded(ctx, len(order), e.config.Limits.Concurrency, func(i int, err error) {
		id := order[i]
		var v *catalog.Video
		if err == nil {
			v, err = e.details(ctx, id)
		}
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			logger.Debug().Str("video_id", id).Msg("video not found in catalog")
		case err != nil:
			failed.add(FailureDetails, id, err)
			logger.Warn().Err(err).Str("video_id", id).Msg("catalog detail lookup failed")
		default:
			videos[i] = v
		}
	})

	// Assemble in query order
	out := fetchResult{
		failures:       failed.failures,
		searchFailures: failed.search,
		detailFailures: failed.details,
		searches:       len(queries),
		detailLookups:  len(order),
	}
	for _, ids := range results {
		for _, id := range ids {
			if v := videos[index[id]]; v != nil {
				out.videos = append(out.videos, *v)
			}
		}
	}

	e.callFailures.Add(int64(failed.search + failed.details))
	return out
}

// runBounded calls fn(i, nil) for every i in [0, n) with at most limit
// calls in flight and returns once all of them have finished. When ctx
// ends before a call gets a slot, that call and every later one receive
// fn(i, ctx.Err()) instead of running.
func runBounded(ctx context.Context, n, limit int, fn func(i int, err error)) {
	sem := semaphore.NewWeighted(int64(max(limit, 1)))
	var wg sync.WaitGroup

	for i := range n {
		if err := sem.Acquire(ctx, 1); err != nil {
			for j := i; j < n; j++ {
				fn(j, err)
			}
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			fn(i, nil)
		}()
	}

	wg.Wait()
}

// search returns the video ids for a query, from cache when possible.
func (e *Engine) search(ctx context.Context, query string, rc *Context, filters catalog.SearchFilters) ([]string, error) {
	key := SearchKey(query, rc)
	if ids, ok := e.cache.GetSearch(key); ok {
		return ids, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.config.Limits.CallTimeout)
	defer cancel()

	e.searchCalls.Add(1)
	start := time.Now()
	ids, err := e.client.Search(callCtx, query, filters)
	metrics.RecordCatalogCall(opSearch, callResult(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	e.cache.SetSearch(key, ids)
	return ids, nil
}

// details returns the video with the given id, from cache when possible.
func (e *Engine) details(ctx context.Context, id string) (*catalog.Video, error) {
	if v, ok := e.cache.GetDetail(id); ok {
		return &v, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.config.Limits.CallTimeout)
	defer cancel()

	e.detailCalls.Add(1)
	start := time.Now()
	v, err := e.client.GetDetails(callCtx, id)
	metrics.RecordCatalogCall(opDetails, callResult(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, catalog.ErrNotFound
	}

	e.cache.SetDetail(v)
	return v, nil
}

// callResult maps a call error to its metrics label.
func callResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, catalog.ErrNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "failure"
	}
}
