// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

/*
Package recommend ranks instructional training videos for a training context.

# Pipeline

A request flows through five stages:

	Context -> GenerateQueries -> catalog fan-out (cached) -> Deduplicate -> Rank

GenerateQueries turns the context into at most ten unique search strings.
The engine runs them against a catalog.Client through a bounded worker pool,
then fetches details for every unique video id through the same pool. Both
kinds of call go through a TwoTierCache (search results keyed by query and
context, details keyed by video id; bounded LRU tiers with a 30 minute TTL
and lazy expiry). Results are assembled in query order and deduplicated, so
the first occurrence of a video id wins regardless of which call finished
first.

# Scoring

Scoring is a table of named rules, each a weight, a reason template and a
match function:

	popularity_views   +min(100, views/10000)
	popularity_likes   +min(50, likes/1000)
	category_keywords  +20 per category keyword in the title
	skill_keywords     +15 per skill keyword in title or description
	muscle_groups      +10 per target muscle group mentioned
	form_keywords      +25 per form keyword (form, technique, proper, ...)
	duration_fit       +20 inside the session range
	duration_near      +10 within 0.8x min to 1.2x max
	duration_outside   -10 otherwise
	equipment          +5 per available equipment item mentioned
	language           +10 when the video language matches the preference
	age_appropriate    +5 for minors when the video carries no rating
	low_views          -20 below the minimum view count
	too_long           -15 above the maximum duration
	recently_watched   -30 for previously shown videos
	credible_channel   +20 for allow-listed channels

Positive contributions become reasons and negative ones warnings. The total
is floored at zero only for the final score; Rank drops zero scores, sorts
stably by score and keeps at most twenty.

# Failure Handling

A failed catalog call is logged, recorded in Summary.Failures and otherwise
ignored. When every search fails, Summary.CatalogUnavailable is set and the
list is empty, which lets callers tell an outage apart from no matches. The
whole fan-out runs under Limits.RequestTimeout and each call under
Limits.CallTimeout.

# Usage

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), client, logging.Logger())
	if err != nil {
	    return err
	}

	resp, err := engine.GetContextualRecommendations(ctx, &recommend.Context{
	    Category:      recommend.CategoryStrength,
	    SkillLevel:    recommend.SkillBeginner,
	    SessionLength: recommend.SessionMedium,
	    Preferences:   recommend.Preferences{Language: "en", MinViewCount: 1000},
	})
*/
package recommend
