// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import "strings"

// Index maps lookup keys to the entries that claim them. It holds integer
// handles into the dataset's entry slice; the dataset stays the owner and
// neither is mutated after BuildIndex returns.
type Index struct {
	dataset *Dataset
	byKey   map[string][]int
	indexed []int
}

func BuildIndex(ds *Dataset) *Index {
	idx := &Index{
		dataset: ds,
		byKey:   make(map[string][]int),
	}

	for handle, entry := range ds.Entries {
		keys := EntryKeys(entry)
		if len(keys) == 0 {
			continue
		}
		idx.indexed = append(idx.indexed, handle)
		for _, key := range keys {
			idx.byKey[key] = append(idx.byKey[key], handle)
		}
	}

	return idx
}

// EntryKeys returns the canonical codes of an entry followed by their
// expanded keys, without duplicates.
func EntryKeys(e *Entry) []string {
	keys := make([]string, 0, len(e.Codes))
	seen := make(map[string]struct{})
	add := func(k string) {
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, code := range e.Codes {
		add(code)
	}
	for _, key := range ExpandSearchKeys(e.Codes) {
		add(key)
	}
	return keys
}

func (idx *Index) Dataset() *Dataset {
	return idx.dataset
}

// Len is the number of distinct lookup keys.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Lookup returns the entries registered under key in registration order.
func (idx *Index) Lookup(key string) []*Entry {
	handles := idx.byKey[key]
	if len(handles) == 0 {
		return nil
	}
	entries := make([]*Entry, len(handles))
	for i, h := range handles {
		entries[i] = idx.dataset.Entries[h]
	}
	return entries
}

// Indexed returns the entries that have at least one lookup key.
func (idx *Index) Indexed() []*Entry {
	entries := make([]*Entry, len(idx.indexed))
	for i, h := range idx.indexed {
		entries[i] = idx.dataset.Entries[h]
	}
	return entries
}

// ResolveAll finds the first candidate key derived from raw that has index
// entries and returns that key with all of its entries. On a miss it
// returns the digits-only projection of raw and nil.
func (idx *Index) ResolveAll(raw string) (string, []*Entry) {
	for _, key := range candidateKeys(raw) {
		if entries := idx.Lookup(key); len(entries) > 0 {
			return key, entries
		}
	}
	return DigitsOnly(raw), nil
}

// Resolve is ResolveAll collapsed to one entry: the registered entry when
// it is alone, otherwise a merged copy. A nil entry means the code is not
// in the dataset. The returned entry must not be modified.
func (idx *Index) Resolve(raw string) (string, *Entry) {
	key, entries := idx.ResolveAll(raw)
	switch len(entries) {
	case 0:
		return key, nil
	case 1:
		return key, entries[0]
	default:
		merged := MergeEntries(entries)
		return key, &merged
	}
}

func candidateKeys(raw string) []string {
	query := strings.TrimSpace(raw)
	var candidates []string
	seen := make(map[string]struct{})
	add := func(k string) {
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		candidates = append(candidates, k)
	}

	add(query)
	for _, key := range expandToken(query, MaxQueryRangeSpan) {
		add(key)
	}
	add(DigitsOnly(query))
	return candidates
}
