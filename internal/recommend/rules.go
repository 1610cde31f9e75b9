// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/formcoach/internal/catalog"
	"github.com/tomtom215/formcoach/internal/textmatch"
)

// detailPlaceholder is replaced in a rule template by the match detail.
const detailPlaceholder = "{detail}"

// MatchFunc evaluates a rule. It returns how many times the rule's weight
// applies (zero when the rule does not fire) and a detail string for the
// rule's template.
type MatchFunc func(v *catalog.Video, rc *Context) (multiplier float64, detail string)

// Rule is one named, weighted scoring term.
type Rule struct {
	Name     string
	Weight   float64
	Template string
	Match    MatchFunc
}

// Contribution is the evaluated outcome of a rule that fired.
type Contribution struct {
	Rule   string  `json:"rule"`
	Points float64 `json:"points"`
	Text   string  `json:"text"`
}

// Warning reports whether the contribution lowers the score.
func (c Contribution) Warning() bool {
	return c.Points < 0
}

// Rule names.
const (
	RulePopularityViews = "popularity_views"
	RulePopularityLikes = "popularity_likes"
	RuleCategory        = "category_keywords"
	RuleSkill           = "skill_keywords"
	RuleMuscleGroups    = "muscle_groups"
	RuleForm            = "form_keywords"
	RuleDurationFit     = "duration_fit"
	RuleDurationNear    = "duration_near"
	RuleDurationOutside = "duration_outside"
	RuleEquipment       = "equipment"
	RuleLanguage        = "language"
	RuleAgeAppropriate  = "age_appropriate"
	RuleLowViews        = "low_views"
	RuleTooLong         = "too_long"
	RuleRecentlyWatched = "recently_watched"
	RuleCredibleChannel = "credible_channel"
)

// RecentlyWatchedWarning is the warning attached to previously shown videos.
const RecentlyWatchedWarning = "Recently watched"

var defaultRules = []Rule{
	{Name: RulePopularityViews, Weight: 1, Template: "Popular: {detail} views", Match: matchViews},
	{Name: RulePopularityLikes, Weight: 1, Template: "Well liked: {detail} likes", Match: matchLikes},
	{Name: RuleCategory, Weight: 20, Template: "Category match: {detail}", Match: matchCategory},
	{Name: RuleSkill, Weight: 15, Template: "Skill level match: {detail}", Match: matchSkill},
	{Name: RuleMuscleGroups, Weight: 10, Template: "Targets {detail}", Match: matchMuscleGroups},
	{Name: RuleForm, Weight: 25, Template: "Form and technique focus: {detail}", Match: matchForm},
	{Name: RuleDurationFit, Weight: 20, Template: "Fits the session length ({detail})", Match: matchDurationFit},
	{Name: RuleDurationNear, Weight: 10, Template: "Close to the session length ({detail})", Match: matchDurationNear},
	{Name: RuleDurationOutside, Weight: -10, Template: "Outside the session length ({detail})", Match: matchDurationOutside},
	{Name: RuleEquipment, Weight: 5, Template: "Uses your equipment: {detail}", Match: matchEquipment},
	{Name: RuleLanguage, Weight: 10, Template: "In your preferred language ({detail})", Match: matchLanguage},
	{Name: RuleAgeAppropriate, Weight: 5, Template: "Suitable for younger viewers", Match: matchAgeAppropriate},
	{Name: RuleLowViews, Weight: -20, Template: "Low view count ({detail})", Match: matchLowViews},
	{Name: RuleTooLong, Weight: -15, Template: "Longer than your maximum duration ({detail})", Match: matchTooLong},
	{Name: RuleRecentlyWatched, Weight: -30, Template: RecentlyWatchedWarning, Match: matchRecentlyWatched},
	{Name: RuleCredibleChannel, Weight: 20, Template: "Trusted channel: {detail}", Match: matchCredibleChannel},
}

// Rules returns a copy of the default rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// RuleByName returns the default rule with the given name.
func RuleByName(name string) (Rule, bool) {
	for _, r := range defaultRules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// EvaluateRule applies a single rule. ok is false when the rule did not fire.
func EvaluateRule(r *Rule, v *catalog.Video, rc *Context) (c Contribution, ok bool) {
	multiplier, detail := r.Match(v, rc)
	if multiplier == 0 {
		return Contribution{}, false
	}

	return Contribution{
		Rule:   r.Name,
		Points: r.Weight * multiplier,
		Text:   strings.ReplaceAll(r.Template, detailPlaceholder, detail),
	}, true
}

// videoMinutes returns the video's duration in minutes, parsing the raw
// duration when the catalog did not fill DurationMinutes.
func videoMinutes(v *catalog.Video) float64 {
	if v.DurationMinutes > 0 {
		return v.DurationMinutes
	}
	return catalog.ParseDurationMinutes(v.Duration)
}

func formatMinutes(m float64) string {
	return humanize.Ftoa(math.Round(m*10)/10) + " min"
}

func matchViews(v *catalog.Video, _ *Context) (float64, string) {
	points := math.Min(100, float64(v.ViewCount)/10000)
	if points <= 0 {
		return 0, ""
	}
	return points, humanize.Comma(v.ViewCount)
}

func matchLikes(v *catalog.Video, _ *Context) (float64, string) {
	points := math.Min(50, float64(v.LikeCount)/1000)
	if points <= 0 {
		return 0, ""
	}
	return points, humanize.Comma(v.LikeCount)
}

func matchCategory(v *catalog.Video, rc *Context) (float64, string) {
	m, ok := categoryKeywords[rc.Category]
	if !ok {
		return 0, ""
	}
	return keywordHits(m.Distinct(v.Title))
}

func matchSkill(v *catalog.Video, rc *Context) (float64, string) {
	m, ok := skillKeywords[rc.SkillLevel]
	if !ok {
		return 0, ""
	}
	return keywordHits(m.Distinct(v.Title, v.Description))
}

func matchMuscleGroups(v *catalog.Video, rc *Context) (float64, string) {
	return matchUserTerms(v, rc.TargetMuscleGroups)
}

func matchForm(v *catalog.Video, _ *Context) (float64, string) {
	return keywordHits(formKeywords.Distinct(v.Title, v.Description))
}

func matchEquipment(v *catalog.Video, rc *Context) (float64, string) {
	items := make([]string, 0, len(rc.Equipment))
	for _, item := range rc.Equipment {
		if !isNoEquipment(item) {
			items = append(items, item)
		}
	}
	return matchUserTerms(v, items)
}

// matchUserTerms counts the distinct caller-supplied terms found in the
// title or description.
func matchUserTerms(v *catalog.Video, terms []string) (float64, string) {
	terms = normalizeTerms(terms)
	if len(terms) == 0 {
		return 0, ""
	}
	return keywordHits(textmatch.New(terms...).Distinct(v.Title, v.Description))
}

func keywordHits(found []string) (float64, string) {
	return float64(len(found)), strings.Join(found, ", ")
}

// durationBucket classifies the video length against the session range:
// 0 inside, 1 within the 0.8x to 1.2x tolerance, 2 outside.
func durationBucket(v *catalog.Video, rc *Context) (bucket int, detail string, ok bool) {
	r, ok := sessionDurations[rc.SessionLength]
	if !ok {
		return 0, "", false
	}

	minutes := videoMinutes(v)
	detail = fmt.Sprintf("%s, %s session is %s-%s min",
		formatMinutes(minutes), rc.SessionLength, humanize.Ftoa(r.Min), humanize.Ftoa(r.Max))

	switch {
	case minutes >= r.Min && minutes <= r.Max:
		return 0, detail, true
	case minutes >= 0.8*r.Min && minutes <= 1.2*r.Max:
		return 1, detail, true
	default:
		return 2, detail, true
	}
}

func matchDurationFit(v *catalog.Video, rc *Context) (float64, string) {
	return durationIs(0, v, rc)
}

func matchDurationNear(v *catalog.Video, rc *Context) (float64, string) {
	return durationIs(1, v, rc)
}

func matchDurationOutside(v *catalog.Video, rc *Context) (float64, string) {
	return durationIs(2, v, rc)
}

func durationIs(want int, v *catalog.Video, rc *Context) (float64, string) {
	bucket, detail, ok := durationBucket(v, rc)
	if !ok || bucket != want {
		return 0, ""
	}
	return 1, detail
}

func matchLanguage(v *catalog.Video, rc *Context) (float64, string) {
	preferred := catalog.NormalizeLanguage(rc.Preferences.Language)
	if preferred == "" || catalog.NormalizeLanguage(v.Language) != preferred {
		return 0, ""
	}
	return 1, preferred
}

func matchAgeAppropriate(v *catalog.Video, rc *Context) (float64, string) {
	if !rc.IsMinor() {
		return 0, ""
	}
	if v.ContentRating != catalog.RatingUnspecified && v.ContentRating != "" {
		return 0, ""
	}
	return 1, ""
}

func matchLowViews(v *catalog.Video, rc *Context) (float64, string) {
	if v.ViewCount >= rc.Preferences.MinViewCount {
		return 0, ""
	}
	return 1, fmt.Sprintf("%s, minimum %s", humanize.Comma(v.ViewCount), humanize.Comma(rc.Preferences.MinViewCount))
}

func matchTooLong(v *catalog.Video, rc *Context) (float64, string) {
	limit := rc.Preferences.MaxDurationMinutes
	minutes := videoMinutes(v)
	if limit <= 0 || minutes <= limit {
		return 0, ""
	}
	return 1, fmt.Sprintf("%s, limit %s", formatMinutes(minutes), formatMinutes(limit))
}

func matchRecentlyWatched(v *catalog.Video, rc *Context) (float64, string) {
	if !rc.PreviouslyShown(v.ID) {
		return 0, ""
	}
	return 1, ""
}

func matchCredibleChannel(v *catalog.Video, _ *Context) (float64, string) {
	channel := strings.TrimSpace(v.ChannelTitle)
	for _, c := range credibleChannels {
		if strings.EqualFold(channel, c) {
			return 1, c
		}
	}
	return 0, ""
}

// normalizeTerms lowercases and trims terms, dropping blanks and duplicates.
func normalizeTerms(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
