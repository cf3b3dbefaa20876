// SPDX-License-Identifier: GPL-3.0-only

package matcher

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Republic   of\tTatarstan ", "republic of tatarstan"},
		{"MOSKVA", "moskva"},
		{"\n\t ", ""},
		{"Café", "café"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		name       string
		guess      string
		candidates []string
		want       bool
	}{
		{"exact", "Kazan", []string{"Kazan"}, true},
		{"case and spacing", "  saint   PETERSBURG ", []string{"Saint Petersburg"}, true},
		{"substring", "tatarstan", []string{"Republic of Tatarstan"}, true},
		{"second candidate", "chelny", []string{"Kazan", "Naberezhnye Chelny"}, true},
		{"empty guess", "", []string{"Kazan"}, false},
		{"blank guess", "   ", []string{""}, false},
		{"no phonetic equivalence", "moscow", []string{"Moskva"}, false},
		{"guess longer than candidate", "kazan city", []string{"Kazan"}, false},
		{"short fragment", "a", []string{"Kazan"}, true},
		{"no candidates", "kazan", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesAny(tt.guess, tt.candidates); got != tt.want {
				t.Errorf("MatchesAny(%q, %q) = %v, want %v", tt.guess, tt.candidates, got, tt.want)
			}
		})
	}
}

func TestMatcherSynonyms(t *testing.T) {
	m := NewMatcher([][]string{{"Moscow", "Moskva"}})

	if !m.MatchesAny("moskva", []string{"Moscow Oblast"}) {
		t.Error("Expected moskva to match Moscow Oblast through the synonym table")
	}
	if !m.MatchesAny("Moscow", []string{"Moskva"}) {
		t.Error("Expected moscow to match Moskva through the synonym table")
	}
	if m.MatchesAny("mosk", []string{"Moscow"}) {
		t.Error("Expected only whole synonym names to be aliased")
	}
	if m.MatchesAny("", []string{"Moscow"}) {
		t.Error("Expected empty guess to never match")
	}
}

func TestNilMatcherIsBase(t *testing.T) {
	var m *Matcher
	if !m.MatchesAny("kazan", []string{"Kazan"}) {
		t.Error("Expected nil matcher to behave like MatchesAny")
	}
	if m.MatchesAny("moscow", []string{"Moskva"}) {
		t.Error("Expected nil matcher to have no synonyms")
	}
}
