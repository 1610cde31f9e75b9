// FormCoach - Contextual Training Video Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/formcoach

package textmatch

import (
	"strings"
)

// automaton implements the Aho-Corasick string matching algorithm.
// It finds all occurrences of multiple keywords in a text
// in O(n + m + z) time, where:
//   - n = length of text
//   - m = total length of all keywords
//   - z = number of matches
//
// The automaton is immutable once built and therefore safe for concurrent
// searches. Matching is case-insensitive: keywords and text are lowered
// before they meet.
type automaton struct {
	root *acNode
}

// acNode represents a node in the Aho-Corasick automaton.
type acNode struct {
	children map[rune]*acNode
	failure  *acNode // Failure link for when match fails
	output   []int   // Indices of keywords that end at this node
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

// buildAutomaton constructs the trie and failure links for keywords.
// Empty keywords are kept in the index space but never match.
func buildAutomaton(keywords []string) *automaton {
	ac := &automaton{root: newACNode()}

	for i, kw := range keywords {
		lowered := strings.ToLower(kw)
		if lowered == "" {
			continue
		}
		ac.insert(i, lowered)
	}

	ac.buildFailureLinks()
	return ac
}

// insert adds a keyword into the trie.
func (ac *automaton) insert(index int, keyword string) {
	node := ac.root
	for _, ch := range keyword {
		next := node.children[ch]
		if next == nil {
			next = newACNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// buildFailureLinks builds failure links using BFS.
func (ac *automaton) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			// Follow failure links to find longest proper suffix
			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}

			if fail == nil {
				child.failure = ac.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// search returns the keyword index of every occurrence in text, in the
// order the occurrences end.
func (ac *automaton) search(text string) []int {
	if len(ac.root.children) == 0 || text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	var hits []int
	node := ac.root

	for _, ch := range lowered {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = ac.root
			continue
		}
		node = node.children[ch]

		hits = append(hits, node.output...)
	}

	return hits
}
