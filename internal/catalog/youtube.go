// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
youtube.go - YouTube Data API v3 Client

This file implements the catalog Client against the YouTube Data API.
Search uses the /search endpoint (ids only) and details use /videos with
the snippet, contentDetails and statistics parts.

API Reference: https://developers.google.com/youtube/v3/docs
*/

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/formcoach/internal/config"
	"github.com/tomtom215/formcoach/internal/logging"
)

// Ensure YouTubeClient implements Client
var _ Client = (*YouTubeClient)(nil)

// maxErrorBody bounds how much of a failed response body is kept in StatusError.
const maxErrorBody = 512

// YouTubeClient provides access to the YouTube Data API v3
type YouTubeClient struct {
	baseURL    string
	apiKey     string
	maxResults int
	limiter    *rate.Limiter
	httpClient *http.Client
}

// youtubeSearchResponse is the subset of /search we consume.
type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// youtubeVideosResponse is the subset of /videos we consume.
// Statistics arrive as decimal strings.
type youtubeVideosResponse struct {
	Items []youtubeVideo `json:"items"`
}

type youtubeVideo struct {
	ID      string `json:"id"`
	Snippet struct {
		Title                string    `json:"title"`
		Description          string    `json:"description"`
		PublishedAt          time.Time `json:"publishedAt"`
		ChannelTitle         string    `json:"channelTitle"`
		Tags                 []string  `json:"tags"`
		CategoryID           string    `json:"categoryId"`
		DefaultLanguage      string    `json:"defaultLanguage"`
		DefaultAudioLanguage string    `json:"defaultAudioLanguage"`
		Thumbnails           map[string]struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration      string `json:"duration"`
		ContentRating struct {
			YTRating string `json:"ytRating"`
		} `json:"contentRating"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
		LikeCount string `json:"likeCount"`
	} `json:"statistics"`
}

// NewYouTubeClient creates a new YouTube Data API client.
// Requests are throttled client-side to cfg.RequestsPerSecond to protect
// the daily API quota.
func NewYouTubeClient(cfg *config.CatalogConfig) *YouTubeClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	maxResults := cfg.MaxResults
	if maxResults < 1 {
		maxResults = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &YouTubeClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		maxResults: maxResults,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search returns video ids matching query in catalog relevance order.
func (c *YouTubeClient) Search(ctx context.Context, query string, filters SearchFilters) ([]string, error) {
	maxResults := filters.MaxResults
	if maxResults < 1 {
		maxResults = c.maxResults
	}

	params := url.Values{}
	params.Set("part", "id")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("videoEmbeddable", "true")
	if filters.Language != "" {
		params.Set("relevanceLanguage", filters.Language)
	}
	if filters.SafeSearch != "" {
		params.Set("safeSearch", filters.SafeSearch)
	}
	if filters.VideoDuration != "" {
		params.Set("videoDuration", filters.VideoDuration)
	}

	var result youtubeSearchResponse
	if err := c.get(ctx, "search", "/search", params, &result); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// GetDetails returns the full record for id, or ErrNotFound.
func (c *YouTubeClient) GetDetails(ctx context.Context, id string) (*Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", id)

	var result youtubeVideosResponse
	if err := c.get(ctx, "details", "/videos", params, &result); err != nil {
		return nil, err
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return result.Items[0].toVideo(), nil
}

// get performs a throttled GET and decodes the JSON response into out.
func (c *YouTubeClient) get(ctx context.Context, op, endpoint string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("catalog %s rate limit wait: %w", op, err)
	}

	params.Set("key", c.apiKey)
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full request URL, API key included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = logging.SanitizeURL(urlErr.URL)
		}
		return fmt.Errorf("catalog %s request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog %s response: %w", op, err)
	}
	return nil
}

// toVideo maps an API item onto Video. Malformed or missing fields are
// passed through as zero values rather than rejected.
func (v *youtubeVideo) toVideo() *Video {
	language := v.Snippet.DefaultLanguage
	if language == "" {
		language = v.Snippet.DefaultAudioLanguage
	}

	rating := v.ContentDetails.ContentRating.YTRating
	if rating == "" {
		rating = RatingUnspecified
	}

	return &Video{
		ID:              v.ID,
		Title:           v.Snippet.Title,
		Description:     v.Snippet.Description,
		Thumbnail:       v.thumbnail(),
		Duration:        v.ContentDetails.Duration,
		DurationMinutes: ParseDurationMinutes(v.ContentDetails.Duration),
		ViewCount:       parseCount(v.Statistics.ViewCount),
		LikeCount:       parseCount(v.Statistics.LikeCount),
		PublishedAt:     v.Snippet.PublishedAt,
		ChannelTitle:    v.Snippet.ChannelTitle,
		Tags:            v.Snippet.Tags,
		CategoryID:      v.Snippet.CategoryID,
		Language:        NormalizeLanguage(language),
		ContentRating:   rating,
	}
}

// thumbnail picks the best available thumbnail URL.
func (v *youtubeVideo) thumbnail() string {
	for _, size := range []string{"high", "medium", "default"} {
		if t, ok := v.Snippet.Thumbnails[size]; ok && t.URL != "" {
			return t.URL
		}
	}
	return ""
}

// parseCount parses a decimal statistics string; invalid input yields 0.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NormalizeLanguage reduces a BCP-47 tag such as "en-US" to its primary
// language subtag so it compares against a preference like "en".
func NormalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		return tag[:i]
	}
	return tag
}
