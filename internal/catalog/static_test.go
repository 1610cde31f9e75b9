// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadStaticClient(t *testing.T) {
	t.Parallel()

	client, err := LoadStaticClient(filepath.Join("testdata", "videos.json"))
	if err != nil {
		t.Fatalf("LoadStaticClient() error = %v", err)
	}
	if client.Len() != 8 {
		t.Errorf("Len() = %d, want 8", client.Len())
	}

	video, err := client.GetDetails(context.Background(), "sq-beginner-01")
	if err != nil {
		t.Fatalf("GetDetails() error = %v", err)
	}
	if video.DurationMinutes != 12.5 {
		t.Errorf("DurationMinutes = %v, want 12.5", video.DurationMinutes)
	}
	if video.ContentRating != RatingUnspecified {
		t.Errorf("ContentRating = %q, want %q", video.ContentRating, RatingUnspecified)
	}

	adv, err := client.GetDetails(context.Background(), "dl-adv-02")
	if err != nil {
		t.Fatalf("GetDetails() error = %v", err)
	}
	if adv.Language != "en" {
		t.Errorf("Language = %q, want en (normalized)", adv.Language)
	}
}

func TestLoadStaticClient_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadStaticClient(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStaticClient(bad); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestStaticClient_Search(t *testing.T) {
	t.Parallel()

	client := NewStaticClient(
		Video{ID: "a", Title: "Squat basics"},
		Video{ID: "b", Title: "Squat form for beginners", Tags: []string{"legs"}},
		Video{ID: "c", Title: "Bench press"},
		Video{ID: "a", Title: "Duplicate id is ignored"},
		Video{ID: "", Title: "Missing id is ignored"},
	)

	tests := []struct {
		name    string
		query   string
		filters SearchFilters
		want    []string
	}{
		{"more terms rank first", "squat form", SearchFilters{}, []string{"b", "a"}},
		{"ties keep fixture order", "squat", SearchFilters{}, []string{"a", "b"}},
		{"tags are searched", "legs", SearchFilters{}, []string{"b"}},
		{"max results", "squat", SearchFilters{MaxResults: 1}, []string{"a"}},
		{"no match", "volleyball", SearchFilters{}, []string{}},
		{"empty query", "  ", SearchFilters{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := client.Search(context.Background(), tt.query, tt.filters)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestStaticClient_SafeSearch(t *testing.T) {
	t.Parallel()

	client := NewStaticClient(
		Video{ID: "ok", Title: "Strength basics"},
		Video{ID: "restricted", Title: "Strength extreme", ContentRating: "ytAgeRestricted"},
	)

	got, _ := client.Search(context.Background(), "strength", SearchFilters{SafeSearch: "strict"})
	if !reflect.DeepEqual(got, []string{"ok"}) {
		t.Errorf("Search(strict) = %v, want [ok]", got)
	}

	got, _ = client.Search(context.Background(), "strength", SearchFilters{})
	if len(got) != 2 {
		t.Errorf("Search() = %v, want both videos", got)
	}
}

func TestStaticClient_GetDetails(t *testing.T) {
	t.Parallel()

	client := NewStaticClient(Video{ID: "a", Tags: []string{"x"}})

	_, err := client.GetDetails(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDetails() error = %v, want ErrNotFound", err)
	}

	v, err := client.GetDetails(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetDetails() error = %v", err)
	}
	v.Tags[0] = "mutated"

	again, _ := client.GetDetails(context.Background(), "a")
	if again.Tags[0] != "x" {
		t.Error("GetDetails() returned shared tag slice")
	}
}

func TestStaticClient_CanceledContext(t *testing.T) {
	t.Parallel()

	client := NewStaticClient(Video{ID: "a", Title: "squat"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Search(ctx, "squat", SearchFilters{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Search() error = %v, want context.Canceled", err)
	}
	if _, err := client.GetDetails(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Errorf("GetDetails() error = %v, want context.Canceled", err)
	}
}
