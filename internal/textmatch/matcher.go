// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

// Package textmatch provides case-insensitive multi-keyword substring
// matching over video titles and descriptions.
package textmatch

// Matcher matches a fixed keyword vocabulary against text.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	vocabulary []string
	ac         *automaton
}

// New builds a Matcher for the given vocabulary. Vocabulary order is
// preserved in results, which keeps callers deterministic.
func New(vocabulary ...string) *Matcher {
	vocab := make([]string, len(vocabulary))
	copy(vocab, vocabulary)

	return &Matcher{
		vocabulary: vocab,
		ac:         buildAutomaton(vocab),
	}
}

// Distinct returns every vocabulary entry that occurs in any of texts, once
// each, in vocabulary order.
func (m *Matcher) Distinct(texts ...string) []string {
	if len(m.vocabulary) == 0 {
		return nil
	}

	seen := make([]bool, len(m.vocabulary))
	found := 0
	for _, text := range texts {
		for _, idx := range m.ac.search(text) {
			if !seen[idx] {
				seen[idx] = true
				found++
			}
		}
		if found == len(m.vocabulary) {
			break
		}
	}

	if found == 0 {
		return nil
	}

	out := make([]string, 0, found)
	for i, ok := range seen {
		if ok {
			out = append(out, m.vocabulary[i])
		}
	}
	return out
}

// Count returns the number of distinct vocabulary entries found in texts.
func (m *Matcher) Count(texts ...string) int {
	return len(m.Distinct(texts...))
}

// Contains reports whether any vocabulary entry occurs in texts.
func (m *Matcher) Contains(texts ...string) bool {
	for _, text := range texts {
		if len(m.ac.search(text)) > 0 {
			return true
		}
	}
	return false
}
