// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package catalog

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// Ensure StaticClient implements Client
var _ Client = (*StaticClient)(nil)

// ytAgeRestricted is the rating YouTube assigns to age-restricted videos.
const ytAgeRestricted = "ytAgeRestricted"

// StaticClient is an in-memory catalog backed by a fixed set of videos.
// It serves offline runs (the CLI --fixtures flag) and tests.
type StaticClient struct {
	videos []Video
	byID   map[string]int
}

// NewStaticClient builds a catalog from videos. Later duplicates of an id
// are ignored.
func NewStaticClient(videos ...Video) *StaticClient {
	c := &StaticClient{
		videos: make([]Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}
	for i := range videos {
		v := videos[i]
		if v.ID == "" {
			continue
		}
		if _, dup := c.byID[v.ID]; dup {
			continue
		}
		if v.DurationMinutes == 0 && v.Duration != "" {
			v.DurationMinutes = ParseDurationMinutes(v.Duration)
		}
		if v.ContentRating == "" {
			v.ContentRating = RatingUnspecified
		}
		v.Language = NormalizeLanguage(v.Language)
		c.byID[v.ID] = len(c.videos)
		c.videos = append(c.videos, v)
	}
	return c
}

// LoadStaticClient reads a JSON array of videos from path.
func LoadStaticClient(path string) (*StaticClient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog fixtures %s: %w", path, err)
	}

	var videos []Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode catalog fixtures %s: %w", path, err)
	}

	return NewStaticClient(videos...), nil
}

// Len returns the number of videos in the catalog.
func (c *StaticClient) Len() int {
	return len(c.videos)
}

// Search ranks videos by how many query terms occur in their title,
// description or tags. Ties keep fixture order.
func (c *StaticClient) Search(ctx context.Context, query string, filters SearchFilters) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	terms := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if len(terms) == 0 {
		return nil, nil
	}

	type match struct {
		id    string
		terms int
	}
	var matches []match
	for i := range c.videos {
		v := &c.videos[i]
		if filters.SafeSearch == "strict" && v.ContentRating == ytAgeRestricted {
			continue
		}

		haystack := strings.ToLower(v.Title + " " + v.Description + " " + strings.Join(v.Tags, " "))
		n := 0
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				n++
			}
		}
		if n > 0 {
			matches = append(matches, match{id: v.ID, terms: n})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].terms > matches[j].terms
	})

	limit := filters.MaxResults
	if limit <= 0 || limit > len(matches) {
		limit = len(matches)
	}
	ids := make([]string, 0, limit)
	for _, m := range matches[:limit] {
		ids = append(ids, m.id)
	}
	return ids, nil
}

// GetDetails returns a copy of the stored video.
func (c *StaticClient) GetDetails(ctx context.Context, id string) (*Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	v := c.videos[idx]
	if v.Tags != nil {
		v.Tags = append([]string(nil), v.Tags...)
	}
	return &v, nil
}
