// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package logging

import (
	"net/url"
	"strings"
)

// sensitiveParams are query parameters whose values never reach log output.
var sensitiveParams = map[string]bool{
	"key":          true,
	"api_key":      true,
	"apikey":       true,
	"access_token": true,
	"token":        true,
}

// SanitizeToken masks a secret, showing only the first and last 4 characters.
// Example: "AIzaSyA1234567890abcdef" -> "AIza...cdef"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeURL masks the values of credential-bearing query parameters.
// Unparseable input is returned with its query string removed.
func SanitizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if i := strings.IndexByte(rawURL, '?'); i >= 0 {
			return rawURL[:i]
		}
		return rawURL
	}

	if u.RawQuery == "" {
		return rawURL
	}

	q := u.Query()
	for param := range q {
		if sensitiveParams[strings.ToLower(param)] {
			q.Set(param, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
