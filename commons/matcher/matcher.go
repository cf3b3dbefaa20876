// SPDX-License-Identifier: GPL-3.0-only

// Package matcher grades free-text quiz answers against region and city
// names. Matching is case and whitespace insensitive and accepts any
// substring of a candidate; there is no edit-distance or phonetic matching.
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize collapses whitespace runs, trims and lowercases s.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return cases.Lower(language.Und).String(s)
}

// MatchesAny reports whether guess equals, or is a substring of, any
// candidate after normalization. An empty guess never matches, and a very
// short guess such as "a" matches every candidate containing it.
func MatchesAny(guess string, candidates []string) bool {
	return matchNormalized(Normalize(guess), candidates)
}

func matchNormalized(guess string, candidates []string) bool {
	if guess == "" {
		return false
	}
	for _, candidate := range candidates {
		c := Normalize(candidate)
		if guess == c || strings.Contains(c, guess) {
			return true
		}
	}
	return false
}

// Matcher is MatchesAny with an explicit synonym table. Names in the same
// group stand in for each other, so with {"moscow", "moskva"} the guess
// "moskva" also matches "Moscow Oblast".
type Matcher struct {
	synonyms map[string][]string
}

func NewMatcher(groups [][]string) *Matcher {
	m := &Matcher{synonyms: make(map[string][]string)}
	for _, group := range groups {
		var names []string
		for _, name := range group {
			if n := Normalize(name); n != "" {
				names = append(names, n)
			}
		}
		for _, name := range names {
			for _, alias := range names {
				if alias != name && !contains(m.synonyms[name], alias) {
					m.synonyms[name] = append(m.synonyms[name], alias)
				}
			}
		}
	}
	return m
}

func (m *Matcher) MatchesAny(guess string, candidates []string) bool {
	g := Normalize(guess)
	if matchNormalized(g, candidates) {
		return true
	}
	if m == nil {
		return false
	}
	for _, alias := range m.synonyms[g] {
		if matchNormalized(alias, candidates) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
