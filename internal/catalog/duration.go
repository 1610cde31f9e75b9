// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package catalog

import (
	"strings"

	"github.com/sosodev/duration"
)

// ParseDurationMinutes converts a compact ISO-8601 duration such as
// "PT1H2M30S" into minutes. Empty or malformed input yields 0.
func ParseDurationMinutes(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	d, err := duration.Parse(strings.ToUpper(s))
	if err != nil {
		return 0
	}

	minutes := d.ToTimeDuration().Minutes()
	if minutes < 0 {
		return 0
	}
	return minutes
}
