// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxRangeSpan caps how many keys a single range token in a dataset may
	// produce.
	MaxRangeSpan = 100000
	// MaxQueryRangeSpan is the cap for ranges typed into a query.
	MaxQueryRangeSpan = 1000
)

// Matches "300-302", "R300-R329", "08 - 5". Prefix letters are dropped.
// Spaces include Unicode separators such as U+00A0.
var rangePattern = regexp.MustCompile(`^[\s\p{Z}]*[A-Za-z]*[\s\p{Z}]*(\d+)[\s\p{Z}]*-[\s\p{Z}]*(?:[A-Za-z]*[\s\p{Z}]*)?(\d+)[\s\p{Z}]*$`)

var dashReplacer = strings.NewReplacer(
	"\u2012", "-",
	"\u2013", "-",
	"\u2014", "-",
	"\u2212", "-",
)

// ExpandSearchKeys expands code strings into digits-only lookup keys,
// de-duplicated in first-seen order across all tokens.
func ExpandSearchKeys(codes []string) []string {
	keys := make([]string, 0, len(codes))
	seen := make(map[string]struct{})
	for _, code := range codes {
		for _, key := range expandCodeToken(code) {
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

func expandCodeToken(code string) []string {
	return expandToken(code, MaxRangeSpan)
}

func expandToken(code string, maxSpan int) []string {
	normalized := dashReplacer.Replace(strings.TrimSpace(code))
	if m := rangePattern.FindStringSubmatch(normalized); m != nil {
		return expandRange(m[1], m[2], maxSpan)
	}

	if digits := DigitsOnly(code); digits != "" {
		return []string{digits}
	}
	return nil
}

func expandRange(startStr, endStr string, maxSpan int) []string {
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil
	}
	if end < start {
		start, end = end, start
	}
	if end-start >= maxSpan {
		return nil
	}

	width := max(len(startStr), len(endStr))
	keys := make([]string, 0, end-start+1)
	for v := start; v <= end; v++ {
		keys = append(keys, fmt.Sprintf("%0*d", width, v))
	}
	return keys
}
