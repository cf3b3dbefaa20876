// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliDataset = `{
	"country": "Russia",
	"country_code": "+7",
	"codes": [
		{"code": "812", "regions": ["Saint Petersburg"], "primary_cities": ["Saint Petersburg"], "notes": "Northern capital"},
		{"code": "4012", "regions": ["Kaliningrad Oblast"], "primary_cities": ["Kaliningrad"]}
	]
}`

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Russia.json"), []byte(cliDataset), 0o644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	t.Setenv("DEFAULT_COUNTRY", "Russia")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	out, err := runCLI(t, "", "lookup", "+7 812")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	for _, want := range []string{"+7 812:", "Cities: Saint Petersburg", "Notes: Northern capital"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "", "lookup", "Russia", "999")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !strings.Contains(out, "Code 999 not found.") {
		t.Errorf("Expected a not-found message, got:\n%s", out)
	}
}

func TestLookupCommandUnknownCountry(t *testing.T) {
	if _, err := runCLI(t, "", "lookup", "Atlantis", "812"); err == nil {
		t.Error("Expected an error for an unknown country")
	}
}

func TestLookupInteractive(t *testing.T) {
	out, err := runCLI(t, "4012\n\nq\n", "lookup")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !strings.Contains(out, "Regions: Kaliningrad Oblast") {
		t.Errorf("Expected the Kaliningrad entry, got:\n%s", out)
	}
	if !strings.Contains(out, "Stopping search.") {
		t.Errorf("Expected the quit message, got:\n%s", out)
	}
}

func TestQuizCommand(t *testing.T) {
	out, err := runCLI(t, "q\n", "quiz", "--rounds", "2", "--seed", "5")
	if err != nil {
		t.Fatalf("quiz failed: %v", err)
	}
	if !strings.Contains(out, "Done! You scored 0 of 0.") {
		t.Errorf("Expected an early stop, got:\n%s", out)
	}
}

func TestCountriesCommand(t *testing.T) {
	out, err := runCLI(t, "", "countries")
	if err != nil {
		t.Fatalf("countries failed: %v", err)
	}
	if !strings.Contains(out, "Russia") || !strings.Contains(out, "+7") {
		t.Errorf("Expected the Russia dataset in the listing, got:\n%s", out)
	}
}

func TestImagesCommand(t *testing.T) {
	maps := t.TempDir()
	if err := os.WriteFile(filepath.Join(maps, "saint_petersburg.png"), nil, 0o644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}
	out, err := runCLI(t, "", "images", "--maps-dir", maps)
	if err != nil {
		t.Fatalf("images failed: %v", err)
	}
	if !strings.Contains(out, "Missing 1 images:") || !strings.Contains(out, "kaliningrad_oblast.png") {
		t.Errorf("Expected the Kaliningrad map to be reported missing, got:\n%s", out)
	}
}
