// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"strings"

	"github.com/tomtom215/formcoach/internal/catalog"
)

// DefaultMaxQueries is the number of queries generated when no limit is given.
const DefaultMaxQueries = 10

// GenerateQueries turns a context into an ordered list of at most limit
// unique catalog search strings. A limit of zero or less, or above
// DefaultMaxQueries, means DefaultMaxQueries.
//
// Order: category phrases crossed with skill phrases, one phrase per
// target muscle group, one per equipment item other than "none", form
// phrases, progression phrases, and finally category plus skill
// combinations. The combinations always produce text, so at least one
// query is returned even for an unrecognized category.
func GenerateQueries(rc *Context, limit int) []string {
	if limit <= 0 || limit > DefaultMaxQueries {
		limit = DefaultMaxQueries
	}

	b := newQueryBuilder(limit)

	for _, base := range categoryQueryPhrases[rc.Category] {
		for _, skill := range skillQueryPhrases[rc.SkillLevel] {
			b.add(base, skill)
		}
	}

	for _, muscle := range rc.TargetMuscleGroups {
		if strings.TrimSpace(muscle) == "" {
			continue
		}
		b.add(muscle, "exercises")
	}

	for _, item := range rc.Equipment {
		if isNoEquipment(item) {
			continue
		}
		b.add(string(rc.Category), "exercises with", item)
	}

	if rc.Preferences.IncludeFormDemos {
		for _, phrase := range formQueryPhrases {
			b.add(phrase)
		}
	}

	if rc.Preferences.IncludeProgressions {
		for _, phrase := range progressionQueryPhrases {
			b.add(phrase)
		}
	}

	b.add(string(rc.SkillLevel), string(rc.Category), "workout")
	b.add(string(rc.Category), string(rc.SkillLevel), "tutorial")

	return b.queries
}

// SearchFilters derives catalog filters from a context.
func SearchFilters(rc *Context, maxResults int) catalog.SearchFilters {
	filters := catalog.SearchFilters{
		MaxResults: maxResults,
		Language:   strings.ToLower(rc.Preferences.Language),
		SafeSearch: "moderate",
	}
	if rc.IsMinor() {
		filters.SafeSearch = "strict"
	}

	switch rc.SessionLength {
	case SessionShort:
		filters.VideoDuration = "medium"
	case SessionLong:
		filters.VideoDuration = "long"
	default:
		filters.VideoDuration = "any"
	}

	return filters
}

// queryBuilder accumulates unique normalized queries up to a limit.
type queryBuilder struct {
	limit   int
	seen    map[string]struct{}
	queries []string
}

func newQueryBuilder(limit int) *queryBuilder {
	return &queryBuilder{
		limit:   limit,
		seen:    make(map[string]struct{}, limit),
		queries: make([]string, 0, limit),
	}
}

// add joins parts into a lower-case, single-spaced query and keeps it if
// it is new and the limit has not been reached.
func (b *queryBuilder) add(parts ...string) {
	if len(b.queries) >= b.limit {
		return
	}

	q := strings.Join(strings.Fields(strings.ToLower(strings.Join(parts, " "))), " ")
	if q == "" {
		return
	}
	if _, dup := b.seen[q]; dup {
		return
	}

	b.seen[q] = struct{}{}
	b.queries = append(b.queries, q)
}

func isNoEquipment(item string) bool {
	item = strings.TrimSpace(item)
	return item == "" || strings.EqualFold(item, equipmentNone)
}
