// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/formcoach/internal/config"
)

const videosResponse = `{
  "items": [{
    "id": "abc123",
    "snippet": {
      "title": "Beginner Strength Training Form Tutorial",
      "description": "Learn the basics",
      "publishedAt": "2024-03-11T09:00:00Z",
      "channelTitle": "Coach Sam",
      "tags": ["strength", "form"],
      "categoryId": "17",
      "defaultAudioLanguage": "en-GB",
      "thumbnails": {
        "default": {"url": "https://i.ytimg.com/default.jpg"},
        "high": {"url": "https://i.ytimg.com/high.jpg"}
      }
    },
    "contentDetails": {"duration": "PT10M"},
    "statistics": {"viewCount": "200000", "likeCount": "5000"}
  }]
}`

func newTestYouTubeClient(url string) *YouTubeClient {
	return NewYouTubeClient(&config.CatalogConfig{
		BaseURL:           url,
		APIKey:            "test-key",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
		Burst:             100,
		MaxResults:        10,
	})
}

func TestYouTubeClient_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Path = %q, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		checks := map[string]string{
			"q":                 "squat form",
			"key":               "test-key",
			"type":              "video",
			"maxResults":        "5",
			"relevanceLanguage": "en",
			"safeSearch":        "strict",
			"videoDuration":     "medium",
		}
		for k, want := range checks {
			if got := q.Get(k); got != want {
				t.Errorf("Query %s = %q, want %q", k, got, want)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":{"kind":"youtube#video","videoId":"a"}},{"id":{"kind":"youtube#channel"}},{"id":{"videoId":"b"}}]}`))
	}))
	defer server.Close()

	client := newTestYouTubeClient(server.URL)
	ids, err := client.Search(context.Background(), "squat form", SearchFilters{
		MaxResults:    5,
		Language:      "en",
		SafeSearch:    "strict",
		VideoDuration: "medium",
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Search() = %v, want %v", ids, want)
	}
}

func TestYouTubeClient_GetDetails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Errorf("Path = %q, want /videos", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "abc123" {
			t.Errorf("id = %q, want abc123", got)
		}
		_, _ = w.Write([]byte(videosResponse))
	}))
	defer server.Close()

	client := newTestYouTubeClient(server.URL + "/")
	video, err := client.GetDetails(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetDetails() error = %v", err)
	}

	if video.Title != "Beginner Strength Training Form Tutorial" {
		t.Errorf("Title = %q", video.Title)
	}
	if video.DurationMinutes != 10 {
		t.Errorf("DurationMinutes = %v, want 10", video.DurationMinutes)
	}
	if video.ViewCount != 200000 || video.LikeCount != 5000 {
		t.Errorf("Counts = %d/%d, want 200000/5000", video.ViewCount, video.LikeCount)
	}
	if video.Language != "en" {
		t.Errorf("Language = %q, want en", video.Language)
	}
	if video.ContentRating != RatingUnspecified {
		t.Errorf("ContentRating = %q, want %q", video.ContentRating, RatingUnspecified)
	}
	if video.Thumbnail != "https://i.ytimg.com/high.jpg" {
		t.Errorf("Thumbnail = %q, want high", video.Thumbnail)
	}
	if !video.PublishedAt.Equal(time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("PublishedAt = %v", video.PublishedAt)
	}
}

func TestYouTubeClient_GetDetailsNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	_, err := newTestYouTubeClient(server.URL).GetDetails(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDetails() error = %v, want ErrNotFound", err)
	}
}

func TestYouTubeClient_StatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quotaExceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestYouTubeClient(server.URL).Search(context.Background(), "q", SearchFilters{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Search() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", statusErr.StatusCode)
	}
	if statusErr.Temporary() {
		t.Error("403 should not be temporary")
	}
}

func TestYouTubeClient_MalformedStatisticsPassThrough(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":"x","snippet":{"title":"t"},"contentDetails":{"duration":"bogus"},"statistics":{"viewCount":"lots"}}]}`))
	}))
	defer server.Close()

	video, err := newTestYouTubeClient(server.URL).GetDetails(context.Background(), "x")
	if err != nil {
		t.Fatalf("GetDetails() error = %v", err)
	}
	if video.ViewCount != 0 || video.LikeCount != 0 || video.DurationMinutes != 0 {
		t.Errorf("Expected zero values for malformed fields, got %+v", video)
	}
}

func TestYouTubeClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := newTestYouTubeClient("http://127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Search(ctx, "q", SearchFilters{}); err == nil {
		t.Error("Search() expected error for canceled context")
	}
}

func TestYouTubeClient_TransportErrorRedactsKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestYouTubeClient(server.URL)
	_, err := client.Search(context.Background(), "squat form", SearchFilters{})
	if err == nil {
		t.Fatal("Search() expected error for closed server")
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Errorf("Error leaks API key: %v", err)
	}
	if !strings.Contains(err.Error(), "REDACTED") {
		t.Errorf("Expected redacted key in error, got: %v", err)
	}
}

func TestStatusError_Temporary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want bool
	}{
		{400, false},
		{404, false},
		{429, true},
		{500, true},
		{503, true},
	}
	for _, tt := range tests {
		if got := (&StatusError{StatusCode: tt.code}).Temporary(); got != tt.want {
			t.Errorf("Temporary(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"en":    "en",
		"en-US": "en",
		"pt_BR": "pt",
		" ES ":  "es",
		"":      "",
	}
	for in, want := range tests {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
