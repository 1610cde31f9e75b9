// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package recommend

import (
	"github.com/tomtom215/formcoach/internal/catalog"
)

// Deduplicate removes repeated video ids, keeping the first occurrence and
// preserving first-seen order. The input slice is not modified.
func Deduplicate(videos []catalog.Video) []catalog.Video {
	seen := make(map[string]struct{}, len(videos))
	out := make([]catalog.Video, 0, len(videos))

	for i := range videos {
		if _, dup := seen[videos[i].ID]; dup {
			continue
		}
		seen[videos[i].ID] = struct{}{}
		out = append(out, videos[i])
	}

	return out
}
