// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/formcoach/internal/recommend"
)

// contextFlags collects a training context from command-line flags.
type contextFlags struct {
	category     string
	skill        string
	session      string
	muscles      []string
	equipment    []string
	previous     []string
	language     string
	maxDuration  float64
	minViews     int64
	formDemos    bool
	progressions bool
	viewerAge    int
}

func (f *contextFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.category, "category", "c", "", "Exercise category: strength, volleyball, plyometric, recovery")
	fs.StringVarP(&f.skill, "skill", "s", "", "Skill level: beginner, intermediate, advanced")
	fs.StringVar(&f.session, "session", "medium", "Session length: short, medium, long")
	fs.StringSliceVarP(&f.muscles, "muscle", "m", nil, "Target muscle group (repeatable or comma separated)")
	fs.StringSliceVarP(&f.equipment, "equipment", "e", nil, "Available equipment (repeatable or comma separated)")
	fs.StringSliceVar(&f.previous, "previous", nil, "Video ids already shown to the viewer")
	fs.StringVar(&f.language, "language", "", "Preferred language code, e.g. en or pt-BR")
	fs.Float64Var(&f.maxDuration, "max-duration", 0, "Maximum video length in minutes (0 means no limit)")
	fs.Int64Var(&f.minViews, "min-views", 0, "Minimum acceptable view count")
	fs.BoolVar(&f.formDemos, "form-demos", false, "Include form and technique searches")
	fs.BoolVar(&f.progressions, "progressions", false, "Include progression searches")
	fs.IntVar(&f.viewerAge, "age", 0, "Viewer age in years (0 means unknown)")

	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("skill")
}

// context parses the enum flags and builds the training context. Range
// checks are left to the engine's validation.
func (f *contextFlags) context() (*recommend.Context, error) {
	category, err := recommend.ParseExerciseCategory(f.category)
	if err != nil {
		return nil, fmt.Errorf("--category: %w", err)
	}
	skill, err := recommend.ParseSkillLevel(f.skill)
	if err != nil {
		return nil, fmt.Errorf("--skill: %w", err)
	}
	session, err := recommend.ParseSessionLength(f.session)
	if err != nil {
		return nil, fmt.Errorf("--session: %w", err)
	}

	return &recommend.Context{
		Category:           category,
		SkillLevel:         skill,
		SessionLength:      session,
		TargetMuscleGroups: f.muscles,
		Equipment:          f.equipment,
		PreviousVideoIDs:   f.previous,
		ViewerAge:          f.viewerAge,
		Preferences: recommend.Preferences{
			Language:            f.language,
			MaxDurationMinutes:  f.maxDuration,
			MinViewCount:        f.minViews,
			IncludeFormDemos:    f.formDemos,
			IncludeProgressions: f.progressions,
		},
	}, nil
}
