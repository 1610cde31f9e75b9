// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/formcoach/internal/catalog"
)

// ExerciseCategory is the kind of training session a context describes.
type ExerciseCategory string

const (
	CategoryStrength   ExerciseCategory = "strength"
	CategoryVolleyball ExerciseCategory = "volleyball"
	CategoryPlyometric ExerciseCategory = "plyometric"
	CategoryRecovery   ExerciseCategory = "recovery"
)

// Categories lists every supported exercise category.
var Categories = []ExerciseCategory{CategoryStrength, CategoryVolleyball, CategoryPlyometric, CategoryRecovery}

// String returns the category name.
func (c ExerciseCategory) String() string { return string(c) }

// IsValid reports whether c is a supported category.
func (c ExerciseCategory) IsValid() bool {
	switch c {
	case CategoryStrength, CategoryVolleyball, CategoryPlyometric, CategoryRecovery:
		return true
	default:
		return false
	}
}

// ParseExerciseCategory parses a category name case-insensitively.
func ParseExerciseCategory(s string) (ExerciseCategory, error) {
	c := ExerciseCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown exercise category %q", s)
	}
	return c, nil
}

// SkillLevel is the viewer's training experience.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// String returns the skill level name.
func (l SkillLevel) String() string { return string(l) }

// IsValid reports whether l is a supported skill level.
func (l SkillLevel) IsValid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// ParseSkillLevel parses a skill level name case-insensitively.
func ParseSkillLevel(s string) (SkillLevel, error) {
	l := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("unknown skill level %q", s)
	}
	return l, nil
}

// SessionLength is the duration bucket of the planned session.
type SessionLength string

const (
	SessionShort  SessionLength = "short"
	SessionMedium SessionLength = "medium"
	SessionLong   SessionLength = "long"
)

// String returns the bucket name.
func (s SessionLength) String() string { return string(s) }

// IsValid reports whether s is a supported bucket.
func (s SessionLength) IsValid() bool {
	switch s {
	case SessionShort, SessionMedium, SessionLong:
		return true
	default:
		return false
	}
}

// ParseSessionLength parses a bucket name case-insensitively.
func ParseSessionLength(s string) (SessionLength, error) {
	b := SessionLength(strings.ToLower(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", fmt.Errorf("unknown session length %q", s)
	}
	return b, nil
}

// Preferences holds the viewer's filtering preferences.
type Preferences struct {
	// Language is the preferred language code ("en", "pt-BR").
	Language string `json:"language" validate:"omitempty,language_code"`

	// MaxDurationMinutes is the longest acceptable video. Zero means no limit.
	MaxDurationMinutes float64 `json:"max_duration_minutes" validate:"gte=0,lte=1440"`

	// MinViewCount is the minimum acceptable view count.
	MinViewCount int64 `json:"min_view_count" validate:"gte=0"`

	// IncludeFormDemos adds form and technique queries.
	IncludeFormDemos bool `json:"include_form_demos"`

	// IncludeProgressions adds progression queries.
	IncludeProgressions bool `json:"include_progressions"`
}

// Context describes the training situation recommendations are made for.
// It is built per request and never persisted.
type Context struct {
	Category           ExerciseCategory `json:"category" validate:"required,category"`
	SkillLevel         SkillLevel       `json:"skill_level" validate:"required,skill_level"`
	TargetMuscleGroups []string         `json:"target_muscle_groups,omitempty" validate:"max=20,dive,required,max=64"`
	SessionLength      SessionLength    `json:"session_length" validate:"required,session_length"`
	Equipment          []string         `json:"equipment,omitempty" validate:"max=20,dive,required,max=64"`
	Preferences        Preferences      `json:"preferences"`
	PreviousVideoIDs   []string         `json:"previous_video_ids,omitempty" validate:"max=1000,dive,required,max=64"`

	// ViewerAge is the viewer's age in years. Zero means not provided.
	ViewerAge int `json:"viewer_age,omitempty" validate:"gte=0,lte=130"`
}

// PreviouslyShown reports whether id was already shown to the viewer.
func (c *Context) PreviouslyShown(id string) bool {
	for _, prev := range c.PreviousVideoIDs {
		if prev == id {
			return true
		}
	}
	return false
}

// IsMinor reports whether the viewer is known to be under 18.
func (c *Context) IsMinor() bool {
	return c.ViewerAge > 0 && c.ViewerAge < 18
}

// RecommendationMetadata is derived from a video's text and the context.
type RecommendationMetadata struct {
	IsFormDemonstration      bool       `json:"is_form_demonstration"`
	IsProgression            bool       `json:"is_progression"`
	Difficulty               SkillLevel `json:"difficulty"`
	Equipment                []string   `json:"equipment"`
	MuscleGroups             []string   `json:"muscle_groups"`
	EstimatedDurationMinutes float64    `json:"estimated_duration_minutes"`
}

// ScoredRecommendation is a video with its relevance score and explanation.
type ScoredRecommendation struct {
	Video catalog.Video `json:"video"`

	// Score is RawScore floored at zero.
	Score float64 `json:"score"`

	// RawScore is the unclamped rule total.
	RawScore float64 `json:"raw_score"`

	Reasons  []string               `json:"reasons"`
	Warnings []string               `json:"warnings"`
	Metadata RecommendationMetadata `json:"metadata"`
}

// Failure kinds reported in a Summary.
const (
	FailureSearch  = "search"
	FailureDetails = "details"
)

// CallFailure records one failed catalog call.
type CallFailure struct {
	Kind   string `json:"kind"`
	Target string `json:"target"` // query text or video id
	Error  string `json:"error"`
}

// Summary describes how a response was produced.
type Summary struct {
	RequestID      string        `json:"request_id"`
	Queries        []string      `json:"queries"`
	QueriesIssued  int           `json:"queries_issued"`
	SearchFailures int           `json:"search_failures"`
	DetailFailures int           `json:"detail_failures"`
	Candidates     int           `json:"candidates"`
	Failures       []CallFailure `json:"failures,omitempty"`

	// CatalogUnavailable is set when every search failed, or when the
	// searches succeeded but every needed detail lookup failed. An empty
	// result then means the catalog could not be reached rather than that
	// nothing matched.
	CatalogUnavailable bool `json:"catalog_unavailable"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Partial reports whether any catalog call failed.
func (s *Summary) Partial() bool {
	return s.SearchFailures > 0 || s.DetailFailures > 0
}

// Response is the result of GetContextualRecommendations.
type Response struct {
	Items   []ScoredRecommendation `json:"items"`
	Summary Summary                `json:"summary"`
}

// CacheStats reports the two-tier cache state.
type CacheStats struct {
	SearchEntries          int    `json:"search_entries"`
	DetailEntries          int    `json:"detail_entries"`
	SearchCapacity         int    `json:"search_capacity"`
	DetailCapacity         int    `json:"detail_capacity"`
	Hits                   int64  `json:"hits"`
	Misses                 int64  `json:"misses"`
	Evictions              int64  `json:"evictions"`
	ApproximateMemoryBytes int64  `json:"approximate_memory_bytes"`
	ApproximateMemory      string `json:"approximate_memory"`
}

// Metrics contains engine counters for observability.
type Metrics struct {
	RequestCount        int64   `json:"request_count"`
	InvalidRequests     int64   `json:"invalid_requests"`
	PartialResponses    int64   `json:"partial_responses"`
	DegradedResponses   int64   `json:"degraded_responses"`
	SearchCalls         int64   `json:"search_calls"`
	DetailCalls         int64   `json:"detail_calls"`
	CallFailures        int64   `json:"call_failures"`
	AverageLatencyMS    float64 `json:"average_latency_ms"`
	CacheHits           int64   `json:"cache_hits"`
	CacheMisses         int64   `json:"cache_misses"`
	LastRequestDuration int64   `json:"last_request_duration_ms"`
}
