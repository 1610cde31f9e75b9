// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"github.com/tomtom215/formcoach/internal/textmatch"
)

// Fixed vocabularies used by query generation, scoring and metadata
// extraction. All matching is case-insensitive substring matching.

// categoryQueryPhrases are the base search phrases per category.
var categoryQueryPhrases = map[ExerciseCategory][]string{
	CategoryStrength:   {"strength training", "weight lifting technique"},
	CategoryVolleyball: {"volleyball drills", "volleyball technique"},
	CategoryPlyometric: {"plyometric exercises", "jump training"},
	CategoryRecovery:   {"recovery stretches", "mobility routine"},
}

// skillQueryPhrases are crossed with the category phrases.
var skillQueryPhrases = map[SkillLevel][]string{
	SkillBeginner:     {"for beginners", "tutorial"},
	SkillIntermediate: {"intermediate", "progression"},
	SkillAdvanced:     {"advanced", "elite drills"},
}

var formQueryPhrases = []string{"proper form technique", "exercise form demonstration"}

var progressionQueryPhrases = []string{"exercise progression", "progressive overload"}

// categoryKeywords are matched against titles only.
var categoryKeywords = map[ExerciseCategory]*textmatch.Matcher{
	CategoryStrength:   textmatch.New("strength", "weight", "lifting", "resistance", "muscle"),
	CategoryVolleyball: textmatch.New("volleyball", "spike", "serve", "setting", "blocking", "passing"),
	CategoryPlyometric: textmatch.New("plyometric", "jump", "explosive", "bound", "agility"),
	CategoryRecovery:   textmatch.New("recovery", "stretch", "mobility", "foam roll", "yoga", "cool down"),
}

// skillKeywords are matched against titles and descriptions.
var skillKeywords = map[SkillLevel]*textmatch.Matcher{
	SkillBeginner:     textmatch.New("beginner", "tutorial", "basics", "introduction", "fundamentals", "getting started"),
	SkillIntermediate: textmatch.New("intermediate", "progression", "next level", "variation", "improve"),
	SkillAdvanced:     textmatch.New("advanced", "expert", "elite", "pro tips", "high level", "complex"),
}

var formKeywords = textmatch.New("form", "technique", "proper", "correct", "demonstration", "how to")

var progressionKeywords = textmatch.New("progression", "progressive", "level up", "next level", "step by step", "regression")

// equipmentVocabulary is scanned to list a video's equipment.
var equipmentVocabulary = textmatch.New(
	"barbell", "dumbbell", "kettlebell", "resistance band", "medicine ball",
	"pull-up bar", "bench", "box", "cable", "foam roller", "jump rope", "volleyball",
)

// muscleVocabulary is scanned to list a video's muscle groups.
var muscleVocabulary = textmatch.New(
	"chest", "back", "shoulders", "biceps", "triceps", "core", "abs",
	"glutes", "quads", "hamstrings", "calves", "hips", "legs", "arms",
)

// credibleChannels is the allow-list of known instructional channels.
var credibleChannels = []string{
	"Athlean-X",
	"Jeff Nippard",
	"Squat University",
	"Alan Thrall",
	"Calisthenicmovement",
	"Renaissance Periodization",
	"The Art of Coaching Volleyball",
	"Volleyball Quick Hits",
	"E3 Rehab",
	"Tom Merrick",
}

// durationRange is an inclusive range in minutes.
type durationRange struct {
	Min float64
	Max float64
}

// sessionDurations maps session buckets to their preferred video length.
var sessionDurations = map[SessionLength]durationRange{
	SessionShort:  {Min: 5, Max: 15},
	SessionMedium: {Min: 15, Max: 30},
	SessionLong:   {Min: 30, Max: 60},
}

// equipmentNone marks an equipment entry that contributes nothing.
const equipmentNone = "none"
