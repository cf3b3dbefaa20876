// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDataset = `{
	"country": "Russia",
	"country_code": "+7",
	"codes": [
		{"code": "812", "regions": ["Saint Petersburg"], "primary_cities": ["Saint Petersburg"], "difficulty": "easy"},
		{"code": ["843", "855"], "regions": ["Republic of Tatarstan"], "primary_cities": ["Kazan", "Naberezhnye Chelny"], "notes": "Volga"},
		{"code": "843", "regions": ["Republic of Tatarstan", "Moscow"], "notes": "Second opinion"},
		{"code": ["10-12"], "regions": ["X"], "primary_cities": ["Y"]},
		{"code": "R300–R329", "regions": ["Ranged"]},
		{"code": "none", "regions": ["No digits"]},
		{"regions": ["No code at all"]}
	]
}`

func mustIndex(t *testing.T) *Index {
	t.Helper()
	ds, err := ParseDataset("Russia", []byte(sampleDataset))
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	return BuildIndex(ds)
}

func TestBuildIndex(t *testing.T) {
	idx := mustIndex(t)

	if got := len(idx.Dataset().Entries); got != 7 {
		t.Fatalf("Expected 7 dataset entries, got %d", got)
	}
	// "none" registers under its canonical code; the code-less entry is dropped.
	if got := len(idx.Indexed()); got != 6 {
		t.Errorf("Expected 6 indexed entries, got %d", got)
	}
	if got := idx.Lookup("843"); len(got) != 2 {
		t.Errorf("Expected 2 entries under 843, got %d", len(got))
	}
	if got := idx.Lookup("R300–R329"); len(got) != 1 {
		t.Errorf("Expected canonical range code to be a key, got %d entries", len(got))
	}
	if got := idx.Lookup("315"); len(got) != 1 || got[0].Regions[0] != "Ranged" {
		t.Errorf("Expected expanded key 315 to hit the ranged entry, got %v", got)
	}
	if got := idx.Lookup("999"); got != nil {
		t.Errorf("Expected no entries for 999, got %v", got)
	}
	// Entries are shared, not copied.
	if idx.Lookup("843")[0] != idx.Lookup("855")[0] {
		t.Error("Expected keys of one entry to point at the same record")
	}
}

func TestEntryKeys(t *testing.T) {
	e := &Entry{Codes: []string{"812", "10-11"}}
	want := []string{"812", "10-11", "10", "11"}
	if diff := cmp.Diff(want, EntryKeys(e)); diff != "" {
		t.Errorf("EntryKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	idx := mustIndex(t)

	tests := []struct {
		name        string
		query       string
		wantKey     string
		wantRegions []string
		wantFound   bool
	}{
		{"direct key", "812", "812", []string{"Saint Petersburg"}, true},
		{"padded query", "  812 ", "812", []string{"Saint Petersburg"}, true},
		{"decorated query", "(812)", "812", []string{"Saint Petersburg"}, true},
		{"inside a range", "11", "11", []string{"X"}, true},
		{"merged duplicates", "843", "843", []string{"Republic of Tatarstan", "Moscow"}, true},
		{"canonical range string", "R300–R329", "R300–R329", []string{"Ranged"}, true},
		{"range query", "300-301", "300", []string{"Ranged"}, true},
		{"unknown", "999", "999", nil, false},
		{"unknown decorated", "+9-99", "999", nil, false},
		{"no digits", "abc", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, entry := idx.Resolve(tt.query)
			if key != tt.wantKey {
				t.Errorf("Resolve(%q) key = %q, want %q", tt.query, key, tt.wantKey)
			}
			if (entry != nil) != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.query, entry != nil, tt.wantFound)
			}
			if entry == nil {
				return
			}
			if diff := cmp.Diff(tt.wantRegions, entry.Regions); diff != "" {
				t.Errorf("Resolve(%q) regions mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestResolveMergedNotes(t *testing.T) {
	idx := mustIndex(t)
	_, entry := idx.Resolve("843")
	if entry == nil {
		t.Fatal("Expected 843 to resolve")
	}
	if entry.Notes != "Volga / Second opinion" {
		t.Errorf("Expected joined notes, got %q", entry.Notes)
	}
	if diff := cmp.Diff([]string{"843", "855"}, entry.Codes); diff != "" {
		t.Errorf("Expected codes of the first entry (-want +got):\n%s", diff)
	}
	// The stored entries are untouched by the merge.
	if notes := idx.Lookup("843")[0].Notes; notes != "Volga" {
		t.Errorf("Expected stored notes to stay %q, got %q", "Volga", notes)
	}
}

func TestResolveAllPickFirst(t *testing.T) {
	idx := mustIndex(t)
	key, entries := idx.ResolveAll("843")
	if key != "843" || len(entries) != 2 {
		t.Fatalf("Expected two alternatives under 843, got %q %d", key, len(entries))
	}
	if entries[0].Notes != "Volga" {
		t.Errorf("Expected registration order, got first notes %q", entries[0].Notes)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	idx := mustIndex(t)
	for i := 0; i < 20; i++ {
		key, entry := idx.Resolve("843")
		if key != "843" || entry == nil || entry.Notes != "Volga / Second opinion" {
			t.Fatalf("Resolve changed on iteration %d: %q %+v", i, key, entry)
		}
	}
}

func TestEndToEndRangeLookup(t *testing.T) {
	ds, err := ParseDataset("X", []byte(`{"codes":[{"code":["10-12"],"regions":["X"],"primary_cities":["Y"]}]}`))
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	_, entry := BuildIndex(ds).Resolve("11")
	if entry == nil {
		t.Fatal("Expected 11 to resolve")
	}
	if diff := cmp.Diff([]string{"X"}, entry.Regions); diff != "" {
		t.Errorf("Regions mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidateKeysCapQueryRanges(t *testing.T) {
	got := candidateKeys("0-99999")
	if diff := cmp.Diff([]string{"0-99999", "099999"}, got); diff != "" {
		t.Errorf("Expected a wide query range to stay unexpanded (-want +got):\n%s", diff)
	}
	if got := candidateKeys("300-302"); len(got) != 4 {
		t.Errorf("Expected a small query range to expand, got %v", got)
	}
}

func TestResolveBarePrefix(t *testing.T) {
	ds, err := ParseDataset("X", []byte(`{"country_code": "+7", "codes": [{"code": "7", "regions": ["Kazakhstan"]}]}`))
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}
	key, entry := BuildIndex(ds).Resolve(TrimCountryCode("+7", ds.CountryCode))
	if key != "7" || entry == nil {
		t.Errorf("Expected +7 to resolve to code 7, got %q %v", key, entry)
	}
}
