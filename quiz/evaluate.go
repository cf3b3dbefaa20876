// SPDX-License-Identifier: GPL-3.0-only

package quiz

import (
	"errors"
	"fmt"
	"strings"

	"dialcodes-server/commons/dialcode"
)

var ErrCodeNotFound = errors.New("code not found")

// AnswerMatcher decides whether a guess names one of the candidates.
// *matcher.Matcher satisfies it.
type AnswerMatcher interface {
	MatchesAny(guess string, candidates []string) bool
}

type Result struct {
	Correct       bool     `json:"correct"`
	MatchedOn     string   `json:"matched_on"`
	Code          string   `json:"code"`
	Regions       []string `json:"regions"`
	PrimaryCities []string `json:"primary_cities"`
	Notes         string   `json:"notes,omitempty"`
	RegionGroup   string   `json:"region_group,omitempty"`
	Images        []string `json:"images"`
}

// Evaluate grades guess against every entry that shares code. A region
// match takes precedence over a city match; an empty guess is a skipped
// question and comes back as incorrect with the answer filled in.
func Evaluate(idx *dialcode.Index, code, guess string, m AnswerMatcher) (Result, error) {
	key, entry := idx.Resolve(code)
	if entry == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrCodeNotFound, strings.TrimSpace(code))
	}

	result := Result{
		Code:          key,
		Regions:       orEmpty(entry.Regions),
		PrimaryCities: orEmpty(entry.PrimaryCities),
		Notes:         entry.Notes,
		RegionGroup:   entry.RegionGroup,
		Images:        orEmpty(entry.ImageFiles()),
	}
	switch {
	case m.MatchesAny(guess, entry.Regions):
		result.Correct, result.MatchedOn = true, string(KindRegion)
	case m.MatchesAny(guess, entry.PrimaryCities):
		result.Correct, result.MatchedOn = true, string(KindCity)
	}
	return result, nil
}

// Grade checks a guess for a question already on screen. City questions
// take city names only; region questions also accept one of the cities.
func Grade(q Question, guess string, m AnswerMatcher) (bool, Kind) {
	if q.Kind == KindCity {
		if m.MatchesAny(guess, q.PrimaryCities) {
			return true, KindCity
		}
		return false, ""
	}
	if m.MatchesAny(guess, q.Regions) {
		return true, KindRegion
	}
	if m.MatchesAny(guess, q.PrimaryCities) {
		return true, KindCity
	}
	return false, ""
}
