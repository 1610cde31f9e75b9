// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"sort"

	"github.com/tomtom215/formcoach/internal/catalog"
)

// MaxResults is the upper bound on a recommendation list.
const MaxResults = 20

// Rank scores candidates, drops those whose floored score is zero, sorts
// by score descending and keeps at most limit entries. Ties keep their
// input order. A limit of zero or less, or above MaxResults, means
// MaxResults. Metadata is attached to the kept entries only.
func (s *Scorer) Rank(candidates []catalog.Video, rc *Context, limit int) []ScoredRecommendation {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	scored := make([]ScoredRecommendation, 0, len(candidates))
	for i := range candidates {
		rec := s.evaluate(&candidates[i], rc)
		if rec.Score <= 0 {
			continue
		}
		scored = append(scored, rec)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	for i := range scored {
		scored[i].Metadata = DeriveMetadata(&scored[i].Video)
	}

	return scored
}

// Rank ranks candidates with the default rule table.
func Rank(candidates []catalog.Video, rc *Context, limit int) []ScoredRecommendation {
	return defaultScorer.Rank(candidates, rc, limit)
}
