// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"github.com/tomtom215/formcoach/internal/catalog"
)

// Scorer evaluates a rule table against videos. Scoring is a pure function
// of the video and the context; a Scorer is safe for concurrent use.
type Scorer struct {
	rules []Rule
}

// NewScorer creates a Scorer over rules, or over the default rule table
// when none are given.
func NewScorer(rules ...Rule) *Scorer {
	if len(rules) == 0 {
		rules = defaultRules
	}
	r := make([]Rule, len(rules))
	copy(r, rules)
	return &Scorer{rules: r}
}

var defaultScorer = NewScorer()

// Explain returns the contribution of every rule that fired, in rule order.
func (s *Scorer) Explain(v *catalog.Video, rc *Context) []Contribution {
	out := make([]Contribution, 0, len(s.rules))
	for i := range s.rules {
		if c, ok := EvaluateRule(&s.rules[i], v, rc); ok {
			out = append(out, c)
		}
	}
	return out
}

// Score computes the scored recommendation for one video, metadata included.
// RawScore is the unclamped total; Score is floored at zero.
func (s *Scorer) Score(v *catalog.Video, rc *Context) ScoredRecommendation {
	rec := s.evaluate(v, rc)
	rec.Metadata = DeriveMetadata(v)
	return rec
}

// evaluate computes score, reasons and warnings without metadata.
func (s *Scorer) evaluate(v *catalog.Video, rc *Context) ScoredRecommendation {
	rec := ScoredRecommendation{
		Video:    *v,
		Reasons:  []string{},
		Warnings: []string{},
	}

	for _, c := range s.Explain(v, rc) {
		rec.RawScore += c.Points
		switch {
		case c.Points > 0:
			rec.Reasons = append(rec.Reasons, c.Text)
		case c.Points < 0:
			rec.Warnings = append(rec.Warnings, c.Text)
		}
	}

	rec.Score = rec.RawScore
	if rec.Score < 0 {
		rec.Score = 0
	}
	return rec
}

// Score scores a video with the default rule table.
func Score(v *catalog.Video, rc *Context) ScoredRecommendation {
	return defaultScorer.Score(v, rc)
}
