// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RatingUnspecified is the content rating reported for videos that carry no
// explicit rating. Age-appropriateness scoring keys on this sentinel.
const RatingUnspecified = "none"

// ErrNotFound is returned by GetDetails when the catalog has no video with
// the requested id.
var ErrNotFound = errors.New("catalog: video not found")

// Video is a single instructional video as described by the catalog.
// Missing fields are passed through as zero values.
type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Thumbnail       string    `json:"thumbnail"`
	Duration        string    `json:"duration"` // compact ISO-8601 form, e.g. PT12M30S
	DurationMinutes float64   `json:"duration_minutes"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	PublishedAt     time.Time `json:"published_at"`
	ChannelTitle    string    `json:"channel_title"`
	Tags            []string  `json:"tags,omitempty"`
	CategoryID      string    `json:"category_id"`
	Language        string    `json:"language"`
	ContentRating   string    `json:"content_rating"`
}

// SearchFilters narrows a catalog search.
type SearchFilters struct {
	MaxResults int    `json:"max_results"`
	Language   string `json:"language,omitempty"`
	SafeSearch string `json:"safe_search,omitempty"` // none | moderate | strict
	// VideoDuration is the catalog's coarse duration bucket: any | short | medium | long
	VideoDuration string `json:"video_duration,omitempty"`
}

// Client defines catalog operations used by the recommendation engine.
// YouTubeClient, StaticClient and CircuitBreakerClient implement this interface.
type Client interface {
	// Search returns video ids matching query in catalog relevance order.
	Search(ctx context.Context, query string, filters SearchFilters) ([]string, error)

	// GetDetails returns the full record for id, or ErrNotFound.
	GetDetails(ctx context.Context, id string) (*Video, error)
}

// StatusError reports a non-2xx response from the catalog.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog %s returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("catalog %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Temporary reports whether the status indicates a transient failure.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
