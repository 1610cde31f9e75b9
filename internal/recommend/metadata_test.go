// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/formcoach/internal/catalog"
)

func TestDeriveMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		video catalog.Video
		want  RecommendationMetadata
	}{
		{
			name: "beginner form demo",
			video: catalog.Video{
				Title:           "Dumbbell Row Basics: Proper Form",
				Description:     "A beginner tutorial for your back and biceps",
				DurationMinutes: 12,
			},
			want: RecommendationMetadata{
				IsFormDemonstration:      true,
				Difficulty:               SkillBeginner,
				Equipment:                []string{"dumbbell"},
				MuscleGroups:             []string{"back", "biceps"},
				EstimatedDurationMinutes: 12,
			},
		},
		{
			name: "advanced progression",
			video: catalog.Video{
				Title:       "Elite Box Jump Progression",
				Description: "Advanced plyometrics for legs",
				Duration:    "PT8M30S",
			},
			want: RecommendationMetadata{
				IsProgression:            true,
				Difficulty:               SkillAdvanced,
				Equipment:                []string{"box"},
				MuscleGroups:             []string{"legs"},
				EstimatedDurationMinutes: 8.5,
			},
		},
		{
			name:  "tie is intermediate",
			video: catalog.Video{Title: "Beginner to advanced"},
			want: RecommendationMetadata{
				Difficulty:   SkillIntermediate,
				Equipment:    []string{},
				MuscleGroups: []string{},
			},
		},
		{
			name:  "no matches",
			video: catalog.Video{Title: "Morning vlog"},
			want: RecommendationMetadata{
				Difficulty:   SkillIntermediate,
				Equipment:    []string{},
				MuscleGroups: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DeriveMetadata(&tt.video)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveMetadata() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}
