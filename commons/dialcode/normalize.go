// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import "strings"

// NormalizeCodeList turns a raw "code" field into trimmed, non-empty code
// strings in input order. nil yields an empty list; values that are neither
// scalars nor lists of scalars yield nothing.
func NormalizeCodeList(raw any) []string {
	var items []any
	switch val := raw.(type) {
	case nil:
		return []string{}
	case []any:
		items = val
	case []string:
		items = make([]any, 0, len(val))
		for _, s := range val {
			items = append(items, s)
		}
	default:
		items = []any{val}
	}

	codes := make([]string, 0, len(items))
	for _, item := range items {
		if code := scalarString(item); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// DigitsOnly strips every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimCountryCode drops a leading "+<country code>" from a query, so that
// "+7 812" resolves like "812" in a dataset whose country code is "+7". A
// query that is only the prefix is returned unchanged.
func TrimCountryCode(query, countryCode string) string {
	q := strings.TrimSpace(query)
	cc := DigitsOnly(countryCode)
	if cc == "" || !strings.HasPrefix(q, "+") {
		return q
	}
	rest := strings.TrimSpace(strings.TrimPrefix(q, "+"))
	if !strings.HasPrefix(rest, cc) {
		return q
	}
	trimmed := strings.TrimSpace(strings.TrimPrefix(rest, cc))
	if DigitsOnly(trimmed) == "" {
		return q
	}
	return trimmed
}
