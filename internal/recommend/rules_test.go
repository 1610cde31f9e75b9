// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"strings"
	"testing"

	"github.com/tomtom215/formcoach/internal/catalog"
)

func TestRules_TableShape(t *testing.T) {
	t.Parallel()

	rules := Rules()
	if len(rules) != 16 {
		t.Fatalf("len(Rules()) = %d, want 16", len(rules))
	}

	seen := make(map[string]bool)
	for _, r := range rules {
		if r.Name == "" || r.Match == nil || r.Template == "" {
			t.Errorf("incomplete rule %+v", r)
		}
		if seen[r.Name] {
			t.Errorf("duplicate rule name %q", r.Name)
		}
		seen[r.Name] = true
	}

	rules[0].Weight = 999
	if r, _ := RuleByName(RulePopularityViews); r.Weight == 999 {
		t.Error("Rules() should return a copy")
	}
	if _, ok := RuleByName("missing"); ok {
		t.Error("RuleByName(missing) should report false")
	}
}

func TestEvaluateRule(t *testing.T) {
	t.Parallel()

	base := func() (*catalog.Video, *Context) {
		return &catalog.Video{
				ID:            "v1",
				Title:         "Volleyball Spike Approach",
				Description:   "Fundamentals for beginners: proper arm swing for shoulders",
				ViewCount:     2_500_000,
				LikeCount:     20_000,
				ChannelTitle:  "the art of coaching volleyball",
				Language:      "en",
				ContentRating: catalog.RatingUnspecified,
			}, &Context{
				Category:      CategoryVolleyball,
				SkillLevel:    SkillBeginner,
				SessionLength: SessionShort,
			}
	}

	tests := []struct {
		name       string
		rule       string
		setup      func(v *catalog.Video, rc *Context)
		wantFired  bool
		wantPoints float64
		wantText   string
	}{
		{name: "views capped at 100", rule: RulePopularityViews, wantFired: true, wantPoints: 100, wantText: "2,500,000"},
		{name: "likes", rule: RulePopularityLikes, wantFired: true, wantPoints: 20, wantText: "20,000"},
		{
			name: "likes capped at 50", rule: RulePopularityLikes,
			setup:     func(v *catalog.Video, _ *Context) { v.LikeCount = 90_000 },
			wantFired: true, wantPoints: 50,
		},
		{
			name: "zero views", rule: RulePopularityViews,
			setup:     func(v *catalog.Video, _ *Context) { v.ViewCount = 0 },
			wantFired: false,
		},
		{name: "category title only", rule: RuleCategory, wantFired: true, wantPoints: 40, wantText: "volleyball, spike"},
		{
			name: "category ignores description", rule: RuleCategory,
			setup: func(v *catalog.Video, _ *Context) {
				v.Title = "Arm swing"
				v.Description = "volleyball spike"
			},
			wantFired: false,
		},
		{name: "skill in description", rule: RuleSkill, wantFired: true, wantPoints: 30, wantText: "beginner, fundamentals"},
		{
			name: "muscle groups case insensitive", rule: RuleMuscleGroups,
			setup:     func(_ *catalog.Video, rc *Context) { rc.TargetMuscleGroups = []string{"Shoulders", "calves", "shoulders"} },
			wantFired: true, wantPoints: 10, wantText: "shoulders",
		},
		{name: "form keyword", rule: RuleForm, wantFired: true, wantPoints: 25, wantText: "proper"},
		{
			name: "duration in short range", rule: RuleDurationFit,
			setup:     func(v *catalog.Video, _ *Context) { v.DurationMinutes = 15 },
			wantFired: true, wantPoints: 20,
		},
		{
			name: "duration near upper tolerance", rule: RuleDurationNear,
			setup:     func(v *catalog.Video, _ *Context) { v.DurationMinutes = 18 },
			wantFired: true, wantPoints: 10,
		},
		{
			name: "duration near lower tolerance", rule: RuleDurationNear,
			setup:     func(v *catalog.Video, _ *Context) { v.DurationMinutes = 4 },
			wantFired: true, wantPoints: 10,
		},
		{
			name: "duration outside", rule: RuleDurationOutside,
			setup:     func(v *catalog.Video, _ *Context) { v.DurationMinutes = 18.5 },
			wantFired: true, wantPoints: -10, wantText: "18.5 min",
		},
		{
			name: "malformed duration counts as zero minutes", rule: RuleDurationOutside,
			setup:     func(v *catalog.Video, _ *Context) { v.Duration = "ten minutes" },
			wantFired: true, wantPoints: -10,
		},
		{
			name: "equipment ignores none", rule: RuleEquipment,
			setup: func(v *catalog.Video, rc *Context) {
				v.Description += " with a resistance band"
				rc.Equipment = []string{"none", "resistance band", "kettlebell"}
			},
			wantFired: true, wantPoints: 5, wantText: "resistance band",
		},
		{
			name: "only none equipment", rule: RuleEquipment,
			setup:     func(_ *catalog.Video, rc *Context) { rc.Equipment = []string{"none"} },
			wantFired: false,
		},
		{
			name: "language primary subtag", rule: RuleLanguage,
			setup:     func(v *catalog.Video, rc *Context) { v.Language = "en-GB"; rc.Preferences.Language = "EN" },
			wantFired: true, wantPoints: 10,
		},
		{name: "language without preference", rule: RuleLanguage, wantFired: false},
		{
			name: "age appropriate for minor", rule: RuleAgeAppropriate,
			setup:     func(_ *catalog.Video, rc *Context) { rc.ViewerAge = 17 },
			wantFired: true, wantPoints: 5,
		},
		{
			name: "age rule skips adults", rule: RuleAgeAppropriate,
			setup:     func(_ *catalog.Video, rc *Context) { rc.ViewerAge = 18 },
			wantFired: false,
		},
		{
			name: "age rule skips rated content", rule: RuleAgeAppropriate,
			setup: func(v *catalog.Video, rc *Context) {
				rc.ViewerAge = 12
				v.ContentRating = "ytAgeRestricted"
			},
			wantFired: false,
		},
		{
			name: "low views", rule: RuleLowViews,
			setup:     func(_ *catalog.Video, rc *Context) { rc.Preferences.MinViewCount = 3_000_000 },
			wantFired: true, wantPoints: -20, wantText: "minimum 3,000,000",
		},
		{
			name: "too long", rule: RuleTooLong,
			setup: func(v *catalog.Video, rc *Context) {
				v.DurationMinutes = 50
				rc.Preferences.MaxDurationMinutes = 30
			},
			wantFired: true, wantPoints: -15, wantText: "50 min, limit 30 min",
		},
		{
			name: "no max duration means no limit", rule: RuleTooLong,
			setup:     func(v *catalog.Video, _ *Context) { v.DurationMinutes = 500 },
			wantFired: false,
		},
		{
			name: "recently watched", rule: RuleRecentlyWatched,
			setup:     func(_ *catalog.Video, rc *Context) { rc.PreviousVideoIDs = []string{"v1"} },
			wantFired: true, wantPoints: -30, wantText: RecentlyWatchedWarning,
		},
		{name: "credible channel case insensitive", rule: RuleCredibleChannel, wantFired: true, wantPoints: 20, wantText: "The Art of Coaching Volleyball"},
		{
			name: "channel must match exactly", rule: RuleCredibleChannel,
			setup:     func(v *catalog.Video, _ *Context) { v.ChannelTitle = "Athlean-X Clips" },
			wantFired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, rc := base()
			if tt.setup != nil {
				tt.setup(v, rc)
			}
			rule, ok := RuleByName(tt.rule)
			if !ok {
				t.Fatalf("unknown rule %q", tt.rule)
			}

			c, fired := EvaluateRule(&rule, v, rc)
			if fired != tt.wantFired {
				t.Fatalf("fired = %v, want %v (contribution %+v)", fired, tt.wantFired, c)
			}
			if !fired {
				return
			}
			if c.Points != tt.wantPoints {
				t.Errorf("Points = %v, want %v", c.Points, tt.wantPoints)
			}
			if tt.wantText != "" && !strings.Contains(c.Text, tt.wantText) {
				t.Errorf("Text = %q, want it to contain %q", c.Text, tt.wantText)
			}
			if strings.Contains(c.Text, detailPlaceholder) {
				t.Errorf("Text %q still contains the placeholder", c.Text)
			}
			if c.Warning() != (c.Points < 0) {
				t.Error("Warning() disagrees with the sign of Points")
			}
		})
	}
}
