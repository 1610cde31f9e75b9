// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package cache

import (
	"strings"
	"testing"
)

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Query string
		Level string
	}

	a := GenerateKey("search", params{Query: "squat form", Level: "beginner"})
	b := GenerateKey("search", params{Query: "squat form", Level: "beginner"})
	c := GenerateKey("search", params{Query: "squat form", Level: "advanced"})

	if a != b {
		t.Errorf("Equal params produced different keys: %q vs %q", a, b)
	}
	if a == c {
		t.Error("Different params produced the same key")
	}
	if !strings.HasPrefix(a, "search:") {
		t.Errorf("Key %q missing method prefix", a)
	}
	// method prefix + ':' + 32 hex chars
	if len(a) != len("search:")+32 {
		t.Errorf("Unexpected key length %d", len(a))
	}
}

func TestGenerateKey_UnmarshalableFallsBack(t *testing.T) {
	t.Parallel()

	key := GenerateKey("detail", make(chan int))
	if !strings.HasPrefix(key, "detail:") {
		t.Errorf("Fallback key %q missing method prefix", key)
	}
}
