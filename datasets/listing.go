// SPDX-License-Identifier: GPL-3.0-only

package datasets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"dialcodes-server/commons"
	"dialcodes-server/commons/dialcode"

	"github.com/biter777/countries"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultDatasetLabel = "Dial codes"
	defaultVariant      = "default"
)

// CountryInfo describes one dataset file for country pickers and stats.
type CountryInfo struct {
	Filename            string   `json:"filename"`
	DisplayName         string   `json:"display_name"`
	GroupKey            string   `json:"group_key"`
	GroupLabel          string   `json:"group_label"`
	DatasetLabel        string   `json:"dataset_label"`
	DatasetDisplayLabel string   `json:"dataset_display_label"`
	DatasetVariant      string   `json:"dataset_variant"`
	IsDefaultDataset    bool     `json:"is_default_dataset"`
	StatsKey            string   `json:"stats_key"`
	Count               int      `json:"count"`
	CodeHint            string   `json:"code_hint"`
	CodeLengthMin       *int     `json:"code_length_min"`
	CodeLengthMax       *int     `json:"code_length_max"`
	RegionGroups        []string `json:"region_groups"`
	DifficultyLevels    []string `json:"difficulty_levels"`
	CountryCode         string   `json:"country_code"`
	ISOCode             string   `json:"iso_code,omitempty"`
	Flag                string   `json:"flag,omitempty"`
}

// AvailableCountries lists every *.json dataset in dir, sorted by file name.
// Files that are empty or not valid JSON are listed as empty datasets.
func AvailableCountries(dir string) ([]CountryInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	sort.Strings(files)

	infos := make([]CountryInfo, 0, len(files))
	for _, file := range files {
		stem := strings.TrimSuffix(filepath.Base(file), ".json")

		ds := &dialcode.Dataset{Name: stem, Country: stem}
		if data, err := os.ReadFile(file); err != nil {
			commons.Logger.Warnf("Failed to read dataset %s: %v", file, err)
		} else if parsed, err := dialcode.ParseDataset(stem, data); err != nil {
			commons.Logger.Warnf("Listing %s as empty: %v", file, err)
		} else {
			ds = parsed
		}

		infos = append(infos, Describe(stem, ds))
	}
	return infos, nil
}

// Describe summarises a parsed dataset stored under the file stem.
func Describe(stem string, ds *dialcode.Dataset) CountryInfo {
	baseName, variant := parseVariant(stem)
	label := datasetLabel(variant, ds)
	displayLabel := ds.ShortLabel
	if displayLabel == "" {
		displayLabel = label
	}

	groupLabel := ds.Country
	if groupLabel == "" || groupLabel == stem {
		groupLabel = baseName
	}
	isDefault := variant == defaultVariant
	statsKey := groupLabel
	if !isDefault {
		statsKey = fmt.Sprintf("%s (%s)", groupLabel, label)
	}

	info := CountryInfo{
		Filename:            stem,
		DisplayName:         statsKey,
		GroupKey:            baseName,
		GroupLabel:          groupLabel,
		DatasetLabel:        label,
		DatasetDisplayLabel: displayLabel,
		DatasetVariant:      variant,
		IsDefaultDataset:    isDefault,
		StatsKey:            statsKey,
		Count:               len(ds.Entries),
		RegionGroups:        []string{},
		DifficultyLevels:    []string{},
		CountryCode:         ds.CountryCode,
	}

	groups := make(map[string]struct{})
	levels := make(map[string]struct{})
	for _, entry := range ds.Entries {
		for _, code := range entry.Codes {
			if info.CodeHint == "" {
				info.CodeHint = code
			}
			n := utf8.RuneCountInString(code)
			if info.CodeLengthMin == nil || n < *info.CodeLengthMin {
				info.CodeLengthMin = &n
			}
			if info.CodeLengthMax == nil || n > *info.CodeLengthMax {
				info.CodeLengthMax = &n
			}
		}
		if entry.RegionGroup != "" {
			groups[entry.RegionGroup] = struct{}{}
		}
		if entry.Difficulty != "" {
			levels[strings.ToLower(entry.Difficulty)] = struct{}{}
		}
	}
	info.RegionGroups = sortedKeys(groups)
	info.DifficultyLevels = sortedKeys(levels)

	if c := lookupCountry(groupLabel, baseName, ds.CountryCode); c != countries.Unknown {
		info.ISOCode = c.Alpha2()
		info.Flag = c.Emoji()
	}
	return info
}

func parseVariant(stem string) (string, string) {
	base, variant, ok := strings.Cut(stem, "-")
	if !ok {
		return stem, defaultVariant
	}
	return base, variant
}

func datasetLabel(variant string, ds *dialcode.Dataset) string {
	if ds.Label != "" {
		return ds.Label
	}
	if variant == defaultVariant {
		return DefaultDatasetLabel
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(variant, "_", " "))
}

// lookupCountry tries the display names first and falls back to the main
// region of the dialing prefix, which covers localised names like
// "Russland" (+7 -> RU).
func lookupCountry(groupLabel, baseName, countryCode string) countries.CountryCode {
	for _, name := range []string{groupLabel, baseName} {
		if c := countries.ByName(name); c != countries.Unknown {
			return c
		}
	}

	digits := dialcode.DigitsOnly(countryCode)
	if digits == "" || len(digits) > 3 {
		return countries.Unknown
	}
	cc, err := strconv.Atoi(digits)
	if err != nil {
		return countries.Unknown
	}
	region := phonenumbers.GetRegionCodeForCountryCode(cc)
	if region == "" || region == "ZZ" {
		return countries.Unknown
	}
	return countries.ByName(region)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
