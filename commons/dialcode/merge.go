// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import "strings"

// MergeEntries combines entries that share a code into one record. Scalar
// fields come from the first entry; regions, primary cities and images are
// ordered unions; distinct notes are joined with " / ".
func MergeEntries(entries []*Entry) Entry {
	if len(entries) == 0 {
		return Entry{}
	}

	merged := *entries[0]
	merged.Codes = append([]string(nil), entries[0].Codes...)
	merged.Regions = mergeStrLists(entries, func(e *Entry) []string { return e.Regions })
	merged.PrimaryCities = mergeStrLists(entries, func(e *Entry) []string { return e.PrimaryCities })
	merged.Images = mergeStrLists(entries, func(e *Entry) []string { return e.Images })

	var notes []string
	seen := make(map[string]struct{})
	for _, e := range entries {
		note := strings.TrimSpace(e.Notes)
		if note == "" {
			continue
		}
		if _, ok := seen[note]; ok {
			continue
		}
		seen[note] = struct{}{}
		notes = append(notes, note)
	}
	merged.Notes = strings.Join(notes, " / ")

	return merged
}

// mergeStrLists returns nil rather than an empty slice so the field is
// omitted from the merged record.
func mergeStrLists(entries []*Entry, field func(*Entry) []string) []string {
	var merged []string
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, value := range field(e) {
			text := strings.TrimSpace(value)
			if text == "" {
				continue
			}
			if _, ok := seen[text]; ok {
				continue
			}
			seen[text] = struct{}{}
			merged = append(merged, text)
		}
	}
	return merged
}
