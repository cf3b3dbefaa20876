// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedDataset = errors.New("malformed dataset")

// Entry is one logical dial-code record. Codes holds the canonical code
// strings; the lookup keys derived from them live in the Index.
type Entry struct {
	Codes          []string `json:"code"`
	Regions        []string `json:"regions,omitempty"`
	PrimaryCities  []string `json:"primary_cities,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	Images         []string `json:"images,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	RegionGroup    string   `json:"region_group,omitempty"`
	PopulationRank *float64 `json:"population_rank,omitempty"`
}

// PrimaryCode is the first canonical code, or "" for an unindexable entry.
func (e *Entry) PrimaryCode() string {
	if len(e.Codes) == 0 {
		return ""
	}
	return e.Codes[0]
}

type Dataset struct {
	Name        string
	Country     string
	CountryCode string
	Label       string
	ShortLabel  string
	Entries     []*Entry
	// Skipped counts records under "codes" that were not JSON objects.
	Skipped int
}

type rawDataset struct {
	Country            any               `json:"country"`
	CountryCode        any               `json:"country_code"`
	Dataset            any               `json:"dataset"`
	DatasetShortLabel  any               `json:"dataset_short_label"`
	DatasetDisplayName any               `json:"dataset_display_name"`
	Codes              []json.RawMessage `json:"codes"`
}

type rawEntry struct {
	Code           any `json:"code"`
	Regions        any `json:"regions"`
	PrimaryCities  any `json:"primary_cities"`
	Notes          any `json:"notes"`
	Images         any `json:"images"`
	Difficulty     any `json:"difficulty"`
	RegionGroup    any `json:"region_group"`
	PopulationRank any `json:"population_rank"`
}

func decodeNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// UnmarshalJSON decodes an entry leniently: scalars of any kind are
// stringified and list fields are trimmed and de-duplicated.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw rawEntry
	if err := decodeNumbers(data, &raw); err != nil {
		return err
	}
	*e = Entry{
		Codes:         NormalizeCodeList(raw.Code),
		Regions:       uniqueStrings(raw.Regions),
		PrimaryCities: uniqueStrings(raw.PrimaryCities),
		Notes:         scalarString(raw.Notes),
		Images:        uniqueStrings(raw.Images),
		Difficulty:    scalarString(raw.Difficulty),
		RegionGroup:   scalarString(raw.RegionGroup),
	}
	if n, ok := raw.PopulationRank.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			e.PopulationRank = &f
		}
	}
	return nil
}

// ParseDataset decodes a dataset file. Empty input is an empty dataset named
// after the file; records under "codes" that are not objects are skipped.
func ParseDataset(name string, data []byte) (*Dataset, error) {
	ds := &Dataset{Name: name, Country: name}
	if len(bytes.TrimSpace(data)) == 0 {
		return ds, nil
	}

	var raw rawDataset
	if err := decodeNumbers(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDataset, name, err)
	}

	if country := scalarString(raw.Country); country != "" {
		ds.Country = country
	}
	ds.CountryCode = scalarString(raw.CountryCode)
	ds.Label = scalarString(raw.Dataset)
	ds.ShortLabel = scalarString(raw.DatasetShortLabel)
	if ds.ShortLabel == "" {
		ds.ShortLabel = scalarString(raw.DatasetDisplayName)
	}

	ds.Entries = make([]*Entry, 0, len(raw.Codes))
	for _, msg := range raw.Codes {
		if !bytes.HasPrefix(bytes.TrimSpace(msg), []byte("{")) {
			ds.Skipped++
			continue
		}
		entry := &Entry{}
		if err := json.Unmarshal(msg, entry); err != nil {
			ds.Skipped++
			continue
		}
		ds.Entries = append(ds.Entries, entry)
	}
	return ds, nil
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number, bool, float64, int, int64:
		return strings.TrimSpace(fmt.Sprint(val))
	default:
		return ""
	}
}

// uniqueStrings turns a scalar or list field into trimmed, non-empty,
// first-seen-ordered unique strings.
func uniqueStrings(v any) []string {
	var items []any
	switch val := v.(type) {
	case []any:
		items = val
	case []string:
		for _, s := range val {
			items = append(items, s)
		}
	default:
		items = []any{val}
	}

	var out []string
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		s := scalarString(item)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
