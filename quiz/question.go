// SPDX-License-Identifier: GPL-3.0-only

// Package quiz picks dial-code questions from a dataset index and grades
// free-text answers.
package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"

	"dialcodes-server/commons/dialcode"
)

var ErrNoQuestions = errors.New("no questions match the filter")

type Kind string

const (
	KindCity   Kind = "city"
	KindRegion Kind = "region"
)

// Filter narrows the entries a question may be drawn from. Empty fields
// match everything; comparison ignores case.
type Filter struct {
	Difficulty  string
	RegionGroup string
}

func (f Filter) accepts(e *dialcode.Entry) bool {
	if f.Difficulty != "" && !strings.EqualFold(strings.TrimSpace(f.Difficulty), e.Difficulty) {
		return false
	}
	if f.RegionGroup != "" && !strings.EqualFold(strings.TrimSpace(f.RegionGroup), e.RegionGroup) {
		return false
	}
	return true
}

type Question struct {
	ID            string   `json:"id"`
	Country       string   `json:"country"`
	CountryCode   string   `json:"country_code"`
	DialCode      string   `json:"dial_code"`
	Kind          Kind     `json:"kind"`
	Regions       []string `json:"regions"`
	PrimaryCities []string `json:"primary_cities"`
	Difficulty    string   `json:"difficulty,omitempty"`
	RegionGroup   string   `json:"region_group,omitempty"`
}

// Picker draws random questions. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a picker with a fixed seed, so a quiz can be replayed.
func NewPicker(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func NewRandomPicker() *Picker {
	return NewPicker(rand.Uint64())
}

// Pick draws an indexed entry accepted by filter. Entries whose codes hold
// no digits are never asked. City questions are only asked for entries
// that list primary cities, and then half of the time.
func (p *Picker) Pick(idx *dialcode.Index, filter Filter) (Question, error) {
	var candidates []*dialcode.Entry
	for _, entry := range idx.Indexed() {
		if filter.accepts(entry) && len(dialcode.ExpandSearchKeys(entry.Codes)) > 0 {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return Question{}, ErrNoQuestions
	}

	p.mu.Lock()
	entry := candidates[p.rng.IntN(len(candidates))]
	kind := KindRegion
	if len(entry.PrimaryCities) > 0 && p.rng.IntN(2) == 0 {
		kind = KindCity
	}
	p.mu.Unlock()

	ds := idx.Dataset()
	code := entry.PrimaryCode()
	return Question{
		ID:            code,
		Country:       ds.Country,
		CountryCode:   ds.CountryCode,
		DialCode:      code,
		Kind:          kind,
		Regions:       orEmpty(entry.Regions),
		PrimaryCities: orEmpty(entry.PrimaryCities),
		Difficulty:    entry.Difficulty,
		RegionGroup:   entry.RegionGroup,
	}, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
