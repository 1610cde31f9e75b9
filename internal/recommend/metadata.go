// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"github.com/tomtom215/formcoach/internal/catalog"
)

// DeriveMetadata extracts descriptive metadata from a video's title and
// description. Difficulty is a majority vote between beginner and advanced
// keyword matches; a tie, including no matches, is intermediate.
func DeriveMetadata(v *catalog.Video) RecommendationMetadata {
	beginner := skillKeywords[SkillBeginner].Count(v.Title, v.Description)
	advanced := skillKeywords[SkillAdvanced].Count(v.Title, v.Description)

	difficulty := SkillIntermediate
	switch {
	case beginner > advanced:
		difficulty = SkillBeginner
	case advanced > beginner:
		difficulty = SkillAdvanced
	}

	return RecommendationMetadata{
		IsFormDemonstration:      formKeywords.Contains(v.Title, v.Description),
		IsProgression:            progressionKeywords.Contains(v.Title, v.Description),
		Difficulty:               difficulty,
		Equipment:                nonNil(equipmentVocabulary.Distinct(v.Title, v.Description)),
		MuscleGroups:             nonNil(muscleVocabulary.Distinct(v.Title, v.Description)),
		EstimatedDurationMinutes: videoMinutes(v),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
